package shell

import (
	"strconv"

	"github.com/Remisdv/BDD/internal/model"
	"github.com/Remisdv/BDD/internal/repository"
	"github.com/Remisdv/BDD/pkg/validator"

	"github.com/google/uuid"
)

func (s *Shell) productMenu(session Session) {
	for {
		s.title("Products")
		s.println("\n1. List all products")
		s.println("2. Search products")
		s.println("3. Add a product")
		s.println("4. Update a product")
		s.println("5. Delete a product")
		s.println("6. Product details")
		s.println("0. Back")

		choice := s.readLine("\nYour choice: ")
		if s.eof {
			return
		}
		switch choice {
		case "1":
			s.listProducts()
		case "2":
			s.searchProducts()
		case "3":
			s.addProduct()
		case "4":
			s.updateProduct()
		case "5":
			s.deleteProduct()
		case "6":
			s.showProduct()
		case "0":
			return
		}
	}
}

func (s *Shell) listProducts() {
	s.title("Product List")

	products, err := s.products.FindAll()
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	s.renderProducts(products)
	s.pause()
}

func (s *Shell) searchProducts() {
	term := s.readLine("\nSearch term (name or reference): ")
	if term == "" {
		return
	}

	products, err := s.products.Search(term)
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	s.renderProducts(products)
	s.pause()
}

// pickCategory lets the user optionally attach a category; nil means none.
func (s *Shell) pickCategory() *uuid.UUID {
	categories, err := s.categories.FindAll()
	if err != nil || len(categories) == 0 {
		return nil
	}
	s.println("\nAvailable categories:")
	s.renderCategories(categories)
	idx := s.selectIndex(len(categories), "Category number (0=none)")
	if idx < 0 {
		return nil
	}
	return &categories[idx].ID
}

func (s *Shell) pickSupplier() *uuid.UUID {
	suppliers, err := s.suppliers.FindAll()
	if err != nil || len(suppliers) == 0 {
		return nil
	}
	s.println("\nAvailable suppliers:")
	s.renderSuppliers(suppliers)
	idx := s.selectIndex(len(suppliers), "Supplier number (0=none)")
	if idx < 0 {
		return nil
	}
	return &suppliers[idx].ID
}

func (s *Shell) addProduct() {
	s.title("Add a Product")

	categoryID := s.pickCategory()
	supplierID := s.pickSupplier()

	s.println("\n--- Product details ---")
	product := &model.Product{
		Reference:      s.readLine("Reference: "),
		Name:           s.readLine("Name: "),
		Description:    s.readLine("Description (optional): "),
		UnitPrice:      s.readDecimal("Unit price: "),
		StockQuantity:  s.readIntDefault("Initial stock [0]: ", 0),
		AlertThreshold: s.readIntDefault("Alert threshold [10]: ", 10),
		CategoryID:     categoryID,
		SupplierID:     supplierID,
	}

	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		s.failure(errValidationf("%s", validator.FirstMessage(errs)))
		s.pause()
		return
	}

	if err := s.products.Create(product); err != nil {
		s.failure(err)
		s.pause()
		return
	}
	s.success("Product created: " + product.Reference)
	s.pause()
}

func (s *Shell) updateProduct() {
	products, err := s.products.FindAll()
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	if len(products) == 0 {
		s.println("\nNo products to update.")
		s.pause()
		return
	}

	s.renderProducts(products)
	idx := s.selectIndex(len(products), "Product number")
	if idx < 0 {
		return
	}
	current := products[idx]

	s.println("\nLeave a field empty to keep its current value.")
	input := repository.ProductUpdate{
		Name:           s.readOptional("Name [" + current.Name + "]: "),
		Description:    s.readOptional("Description [" + dash(current.Description) + "]: "),
		UnitPrice:      s.readOptionalDecimal("Unit price [" + current.UnitPrice.StringFixed(2) + "]: "),
		AlertThreshold: s.readOptionalInt("Alert threshold [" + strconv.Itoa(current.AlertThreshold) + "]: "),
	}

	if err := s.products.Update(current.ID, input); err != nil {
		s.failure(err)
		s.pause()
		return
	}
	s.success("Product updated")
	s.pause()
}

func (s *Shell) deleteProduct() {
	products, err := s.products.FindAll()
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	if len(products) == 0 {
		s.println("\nNo products to delete.")
		s.pause()
		return
	}

	s.renderProducts(products)
	idx := s.selectIndex(len(products), "Product number to delete")
	if idx < 0 {
		return
	}

	s.println("\nDeleting a product also deletes its movement history.")
	if !s.confirm("Confirm deletion?") {
		s.println("\nDeletion cancelled.")
		s.pause()
		return
	}

	if err := s.products.Delete(products[idx].ID); err != nil {
		s.failure(err)
	} else {
		s.success("Product deleted")
	}
	s.pause()
}

func (s *Shell) showProduct() {
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

	s.renderProducts(products)
	idx := s.selectIndex(len(products), "Product number")
	if idx < 0 {
		return
	}
	p := products[idx]

	s.title("Product: " + p.Name)
	s.printf("\nReference:       %s\n", p.Reference)
	s.printf("Description:     %s\n", dash(p.Description))
	s.printf("Unit price:      %s\n", p.UnitPrice.StringFixed(2))
	s.printf("On-hand stock:   %d\n", p.StockQuantity)
	s.printf("Alert threshold: %d\n", p.AlertThreshold)
	if p.Category != nil {
		s.printf("Category:        %s\n", p.Category.Name)
	}
	if p.Supplier != nil {
		s.printf("Supplier:        %s\n", p.Supplier.Name)
	}

	s.println("\nMovement history:")
	history, err := s.stock.History(p.ID)
	if err != nil {
		s.failure(err)
	} else {
		s.renderHistory(history)
	}
	s.pause()
}
