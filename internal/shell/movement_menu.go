package shell

import (
	"github.com/Remisdv/BDD/internal/model"
	"github.com/Remisdv/BDD/internal/service"
)

func (s *Shell) movementMenu(session Session) {
	for {
		s.title("Stock Movements")
		s.println("\n1. Stock inbound")
		s.println("2. Stock outbound")
		s.println("3. Movement history")
		s.println("0. Back")

		choice := s.readLine("\nYour choice: ")
		if s.eof {
			return
		}
		switch choice {
		case "1":
			s.recordMovement(model.MovementIn)
		case "2":
			s.recordMovement(model.MovementOut)
		case "3":
			s.showRecentMovements()
		case "0":
			return
		}
	}
}

func (s *Shell) recordMovement(kind model.MovementKind) {
	if kind == model.MovementIn {
		s.title("Stock Inbound")
	} else {
		s.title("Stock Outbound")
	}

	products, err := s.products.FindAll()
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	if len(products) == 0 {
		s.println("\nNo products.")
		s.pause()
		return
	}

	s.println("\nAvailable products:")
	s.renderProducts(products)

	idx := s.selectIndex(len(products), "Product number")
	if idx < 0 {
		return
	}

	prompt := "Quantity to add: "
	if kind == model.MovementOut {
		prompt = "Quantity to remove: "
	}

	input := service.MovementInput{
		ProductID: products[idx].ID,
		Quantity:  s.readInt(prompt),
		Reason:    s.readLine("Reason (optional): "),
	}

	var movement *model.StockMovement
	if kind == model.MovementIn {
		movement, err = s.stock.RecordInbound(input)
	} else {
		movement, err = s.stock.RecordOutbound(input)
	}
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}

	if movement.Kind == model.MovementIn {
		s.success("Stock inbound recorded")
	} else {
		s.success("Stock outbound recorded")
	}
	s.pause()
}

func (s *Shell) showRecentMovements() {
	s.title("Movement History")

	movements, err := s.stock.Recent(service.DefaultRecentLimit)
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	s.renderMovements(movements)
	s.pause()
}
