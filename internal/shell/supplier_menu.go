package shell

import (
	"github.com/Remisdv/BDD/internal/model"
	"github.com/Remisdv/BDD/internal/repository"
	"github.com/Remisdv/BDD/pkg/validator"
)

func (s *Shell) supplierMenu(session Session) {
	for {
		s.title("Suppliers")
		s.println("\n1. List suppliers")
		s.println("2. Add a supplier")
		s.println("3. Update a supplier")
		s.println("4. Delete a supplier")
		s.println("0. Back")

		choice := s.readLine("\nYour choice: ")
		if s.eof {
			return
		}
		switch choice {
		case "1":
			s.listSuppliers()
		case "2":
			s.addSupplier()
		case "3":
			s.updateSupplier()
		case "4":
			s.deleteSupplier()
		case "0":
			return
		}
	}
}

func (s *Shell) listSuppliers() {
	s.title("Supplier List")

	suppliers, err := s.suppliers.FindAll()
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	s.renderSuppliers(suppliers)
	s.pause()
}

func (s *Shell) addSupplier() {
	s.title("Add a Supplier")

	supplier := &model.Supplier{
		Name:    s.readLine("Supplier name: "),
		Email:   s.readOptional("Email (optional): "),
		Phone:   s.readLine("Phone (optional): "),
		Address: s.readLine("Address (optional): "),
	}

	if errs := validator.ValidateStruct(supplier); len(errs) > 0 {
		s.failure(errValidationf("%s", validator.FirstMessage(errs)))
		s.pause()
		return
	}

	if err := s.suppliers.Create(supplier); err != nil {
		s.failure(err)
		s.pause()
		return
	}
	s.success("Supplier created: " + supplier.Name)
	s.pause()
}

func (s *Shell) updateSupplier() {
	suppliers, err := s.suppliers.FindAll()
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	if len(suppliers) == 0 {
		s.println("\nNo suppliers to update.")
		s.pause()
		return
	}

	s.renderSuppliers(suppliers)
	idx := s.selectIndex(len(suppliers), "Supplier number")
	if idx < 0 {
		return
	}
	current := suppliers[idx]

	email := ""
	if current.Email != nil {
		email = *current.Email
	}

	s.println("\nLeave a field empty to keep its current value.")
	input := repository.SupplierUpdate{
		Name:    s.readOptional("Name [" + current.Name + "]: "),
		Email:   s.readOptional("Email [" + dash(email) + "]: "),
		Phone:   s.readOptional("Phone [" + dash(current.Phone) + "]: "),
		Address: s.readOptional("Address [" + dash(current.Address) + "]: "),
	}

	if err := s.suppliers.Update(current.ID, input); err != nil {
		s.failure(err)
		s.pause()
		return
	}
	s.success("Supplier updated")
	s.pause()
}

func (s *Shell) deleteSupplier() {
	suppliers, err := s.suppliers.FindAll()
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	if len(suppliers) == 0 {
		s.println("\nNo suppliers to delete.")
		s.pause()
		return
	}

	s.renderSuppliers(suppliers)
	idx := s.selectIndex(len(suppliers), "Supplier number to delete")
	if idx < 0 {
		return
	}

	s.println("\nProducts from this supplier keep existing without a supplier.")
	if !s.confirm("Confirm deletion?") {
		s.println("\nDeletion cancelled.")
		s.pause()
		return
	}

	if err := s.suppliers.Delete(suppliers[idx].ID); err != nil {
		s.failure(err)
	} else {
		s.success("Supplier deleted")
	}
	s.pause()
}
