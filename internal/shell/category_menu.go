package shell

import (
	"github.com/Remisdv/BDD/internal/model"
	"github.com/Remisdv/BDD/internal/repository"
	"github.com/Remisdv/BDD/pkg/validator"
)

func (s *Shell) categoryMenu(session Session) {
	for {
		s.title("Categories")
		s.println("\n1. List categories")
		s.println("2. Add a category")
		s.println("3. Update a category")
		s.println("4. Delete a category")
		s.println("5. Products by category")
		s.println("0. Back")

		choice := s.readLine("\nYour choice: ")
		if s.eof {
			return
		}
		switch choice {
		case "1":
			s.listCategories()
		case "2":
			s.addCategory()
		case "3":
			s.updateCategory()
		case "4":
			s.deleteCategory()
		case "5":
			s.productsByCategory()
		case "0":
			return
		}
	}
}

func (s *Shell) listCategories() {
	s.title("Category List")

	categories, err := s.categories.FindAll()
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	s.renderCategories(categories)
	s.pause()
}

func (s *Shell) addCategory() {
	s.title("Add a Category")

	category := &model.Category{
		Name:        s.readLine("Category name: "),
		Description: s.readLine("Description (optional): "),
	}

	if errs := validator.ValidateStruct(category); len(errs) > 0 {
		s.failure(errValidationf("%s", validator.FirstMessage(errs)))
		s.pause()
		return
	}

	if err := s.categories.Create(category); err != nil {
		s.failure(err)
		s.pause()
		return
	}
	s.success("Category created: " + category.Name)
	s.pause()
}

func (s *Shell) updateCategory() {
	categories, err := s.categories.FindAll()
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	if len(categories) == 0 {
		s.println("\nNo categories to update.")
		s.pause()
		return
	}

	s.renderCategories(categories)
	idx := s.selectIndex(len(categories), "Category number")
	if idx < 0 {
		return
	}
	current := categories[idx]

	s.println("\nLeave a field empty to keep its current value.")
	input := repository.CategoryUpdate{
		Name:        s.readOptional("Name [" + current.Name + "]: "),
		Description: s.readOptional("Description [" + dash(current.Description) + "]: "),
	}

	if err := s.categories.Update(current.ID, input); err != nil {
		s.failure(err)
		s.pause()
		return
	}
	s.success("Category updated")
	s.pause()
}

func (s *Shell) deleteCategory() {
	categories, err := s.categories.FindAll()
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	if len(categories) == 0 {
		s.println("\nNo categories to delete.")
		s.pause()
		return
	}

	s.renderCategories(categories)
	idx := s.selectIndex(len(categories), "Category number to delete")
	if idx < 0 {
		return
	}

	s.println("\nProducts in this category keep existing without a category.")
	if !s.confirm("Confirm deletion?") {
		s.println("\nDeletion cancelled.")
		s.pause()
		return
	}

	if err := s.categories.Delete(categories[idx].ID); err != nil {
		s.failure(err)
	} else {
		s.success("Category deleted")
	}
	s.pause()
}

func (s *Shell) productsByCategory() {
	categories, err := s.categories.FindAll()
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	if len(categories) == 0 {
		s.println("\nNo categories.")
		s.pause()
		return
	}

	s.renderCategories(categories)
	idx := s.selectIndex(len(categories), "Category number")
	if idx < 0 {
		return
	}

	s.title("Products in " + categories[idx].Name)
	products, err := s.products.ByCategory(categories[idx].ID)
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	s.renderProducts(products)
	s.pause()
}
