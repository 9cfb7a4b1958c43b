package shell

import (
	"github.com/Remisdv/BDD/internal/model"
)

// userMenu is only reachable from an admin session.
func (s *Shell) userMenu(session Session) {
	for {
		s.title("Users")
		s.println("\n1. List users")
		s.println("2. Create a user")
		s.println("3. Change a password")
		s.println("4. Deactivate a user")
		s.println("0. Back")

		choice := s.readLine("\nYour choice: ")
		if s.eof {
			return
		}
		switch choice {
		case "1":
			s.listUsers()
		case "2":
			s.createUser()
		case "3":
			s.changePassword()
		case "4":
			s.deactivateUser(session)
		case "0":
			return
		}
	}
}

func (s *Shell) listUsers() {
	s.title("User List")

	users, err := s.users.GetUsers()
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	s.renderUsers(users)
	s.pause()
}

func (s *Shell) createUser() {
	s.title("Create a User")

	username := s.readLine("Username: ")
	password := s.readLine("Password: ")
	role := s.readLine("Role (admin/user) [user]: ")
	if role == "" {
		role = model.RoleUser
	}

	user, err := s.users.CreateUser(username, password, role)
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	s.success("User created: " + user.Username)
	s.pause()
}

func (s *Shell) changePassword() {
	users, err := s.users.GetUsers()
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	if len(users) == 0 {
		s.println("\nNo users.")
		s.pause()
		return
	}

	s.renderUsers(users)
	idx := s.selectIndex(len(users), "User number")
	if idx < 0 {
		return
	}

	password := s.readLine("New password: ")
	confirmation := s.readLine("Confirm password: ")
	if password != confirmation {
		s.failure(errValidationf("passwords do not match"))
		s.pause()
		return
	}

	if err := s.users.ChangePassword(users[idx].ID, password); err != nil {
		s.failure(err)
	} else {
		s.success("Password updated")
	}
	s.pause()
}

func (s *Shell) deactivateUser(session Session) {
	users, err := s.users.GetUsers()
	if err != nil {
		s.failure(err)
		s.pause()
		return
	}
	if len(users) == 0 {
		s.println("\nNo users.")
		s.pause()
		return
	}

	s.renderUsers(users)
	idx := s.selectIndex(len(users), "User number to deactivate")
	if idx < 0 {
		return
	}

	if users[idx].ID == session.UserID {
		s.failure(errValidationf("you cannot deactivate your own account"))
		s.pause()
		return
	}

	if err := s.users.Deactivate(users[idx].ID); err != nil {
		s.failure(err)
	} else {
		s.success("User deactivated")
	}
	s.pause()
}
