package shell

// mainMenu is the role-gated hub; the user management entry is only shown to
// (and only reachable by) administrators.
func (s *Shell) mainMenu(session Session) {
	for {
		s.title("STOCK MANAGEMENT - Main Menu")
		s.printf("\nLogged in as %s (%s)\n", session.Username, session.Role)

		s.println("\n1. Products")
		s.println("2. Categories")
		s.println("3. Suppliers")
		s.println("4. Stock movements")
		s.println("5. Stock alerts")
		if session.IsAdmin() {
			s.println("6. Users")
		}
		s.println("0. Log out")

		choice := s.readLine("\nYour choice: ")
		if s.eof {
			return
		}
		switch {
		case choice == "1":
			s.productMenu(session)
		case choice == "2":
			s.categoryMenu(session)
		case choice == "3":
			s.supplierMenu(session)
		case choice == "4":
			s.movementMenu(session)
		case choice == "5":
			s.showAlerts()
		case choice == "6" && session.IsAdmin():
			s.userMenu(session)
		case choice == "0":
			s.println("\nLogging out...")
			return
		}
	}
}

func (s *Shell) showAlerts() {
	s.title("STOCK ALERTS")

	products, err := s.products.LowStock()
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	s.renderAlerts(products)
	s.pause()
}
