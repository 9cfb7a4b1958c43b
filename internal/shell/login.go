package shell

import (
	"github.com/Remisdv/BDD/internal/model"
)

// loginScreen loops until the user quits. Registration is only offered while
// no active administrator exists (the bootstrap window).
func (s *Shell) loginScreen() error {
	for {
		s.title("STOCK MANAGEMENT - Welcome")

		adminExists, err := s.auth.ActiveAdminExists()
		if err != nil {
			return err
		}

		s.println("\n1. Log in")
		if !adminExists {
			s.println("2. Register")
		}
		s.println("0. Quit")

		choice := s.readLine("\nYour choice: ")
		if s.eof {
			return nil
		}
		switch {
		case choice == "1":
			s.login()
		case choice == "2" && !adminExists:
			s.register()
		case choice == "0":
			s.println("\nGoodbye!")
			return nil
		}
	}
}

func (s *Shell) login() {
	username := s.readLine("\nUsername: ")
	password := s.readLine("Password: ")

	user, err := s.auth.Authenticate(username, password)
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}

	s.printf("\n✓ Welcome %s!\n", user.Username)
	s.pause()

	session := Session{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
	s.mainMenu(session)
}

func (s *Shell) register() {
	s.title("Register")

	username := s.readLine("Username: ")
	password := s.readLine("Password: ")
	confirmation := s.readLine("Confirm password: ")

	if password != confirmation {
		s.failure(errValidationf("passwords do not match"))
		s.pause()
		return
	}

	user, err := s.auth.Register(username, password)
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}

	if user.Role == model.RoleAdmin {
		s.success("Administrator account created!")
	} else {
		s.success("Account created!")
	}
	s.pause()
}
