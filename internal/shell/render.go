package shell

import (
	"strconv"

	"github.com/Remisdv/BDD/internal/model"

	"github.com/olekukonko/tablewriter"
)

const timeLayout = "2006-01-02 15:04:05"

func dash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func (s *Shell) table(headers []string) *tablewriter.Table {
	t := tablewriter.NewWriter(s.out)
	t.SetHeader(headers)
	return t
}

func (s *Shell) renderProducts(products []model.Product) {
	if len(products) == 0 {
		s.println("\nNo products found.")
		return
	}
	t := s.table([]string{"#", "Reference", "Name", "Price", "Stock", "Threshold", "Category", "Supplier"})
	for i, p := range products {
		category, supplier := "", ""
		if p.Category != nil {
			category = p.Category.Name
		}
		if p.Supplier != nil {
			supplier = p.Supplier.Name
		}
		t.Append([]string{
			strconv.Itoa(i + 1),
			p.Reference,
			p.Name,
			p.UnitPrice.StringFixed(2),
			strconv.Itoa(p.StockQuantity),
			strconv.Itoa(p.AlertThreshold),
			dash(category),
			dash(supplier),
		})
	}
	t.Render()
}

func (s *Shell) renderCategories(categories []model.Category) {
	if len(categories) == 0 {
		s.println("\nNo categories found.")
		return
	}
	t := s.table([]string{"#", "Name", "Description"})
	for i, c := range categories {
		t.Append([]string{strconv.Itoa(i + 1), c.Name, dash(c.Description)})
	}
	t.Render()
}

func (s *Shell) renderSuppliers(suppliers []model.Supplier) {
	if len(suppliers) == 0 {
		s.println("\nNo suppliers found.")
		return
	}
	t := s.table([]string{"#", "Name", "Email", "Phone", "Address"})
	for i, sup := range suppliers {
		email := ""
		if sup.Email != nil {
			email = *sup.Email
		}
		t.Append([]string{
			strconv.Itoa(i + 1),
			sup.Name,
			dash(email),
			dash(sup.Phone),
			dash(sup.Address),
		})
	}
	t.Render()
}

// renderMovements prints ledger entries; rows from Recent carry their product
// preloaded, history rows of a single product do not.
func (s *Shell) renderMovements(movements []model.StockMovement) {
	if len(movements) == 0 {
		s.println("\nNo movements recorded.")
		return
	}
	t := s.table([]string{"Reference", "Product", "Kind", "Qty", "Reason", "Date"})
	for _, m := range movements {
		reference, name := "", ""
		if m.Product != nil {
			reference = m.Product.Reference
			name = m.Product.Name
		}
		t.Append([]string{
			dash(reference),
			dash(name),
			string(m.Kind),
			strconv.Itoa(m.Quantity),
			dash(m.Reason),
			m.CreatedAt.Format(timeLayout),
		})
	}
	t.Render()
}

func (s *Shell) renderHistory(movements []model.StockMovement) {
	if len(movements) == 0 {
		s.println("No movements recorded.")
		return
	}
	t := s.table([]string{"Kind", "Qty", "Reason", "Date"})
	for _, m := range movements {
		t.Append([]string{
			string(m.Kind),
			strconv.Itoa(m.Quantity),
			dash(m.Reason),
			m.CreatedAt.Format(timeLayout),
		})
	}
	t.Render()
}

func (s *Shell) renderAlerts(products []model.Product) {
	if len(products) == 0 {
		s.println("\n✓ No products below their alert threshold.")
		return
	}
	t := s.table([]string{"#", "Reference", "Name", "Stock", "Threshold", "Category"})
	for i, p := range products {
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		t.Append([]string{
			strconv.Itoa(i + 1),
			p.Reference,
			p.Name,
			strconv.Itoa(p.StockQuantity),
			strconv.Itoa(p.AlertThreshold),
			dash(category),
		})
	}
	t.Render()
	s.printf("\n⚠ %d product(s) in stock alert!\n", len(products))
}

func (s *Shell) renderUsers(users []model.User) {
	if len(users) == 0 {
		s.println("\nNo users found.")
		return
	}
	t := s.table([]string{"#", "Username", "Role", "Active"})
	for i, u := range users {
		active := "no"
		if u.Active {
			active = "yes"
		}
		t.Append([]string{strconv.Itoa(i + 1), u.Username, u.Role, active})
	}
	t.Render()
}
