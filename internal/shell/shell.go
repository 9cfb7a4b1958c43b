// Package shell implements the interactive console: the menu tree, table
// rendering and input parsing. Role enforcement for the admin-only menus
// happens here; this is a single-process local tool, so there is no separate
// server-side capability check.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Remisdv/BDD/internal/apperr"
	"github.com/Remisdv/BDD/internal/repository"
	"github.com/Remisdv/BDD/internal/service"

	"github.com/shopspring/decimal"
)

// Deps bundles everything the menu tree consumes.
type Deps struct {
	Auth       service.AuthService
	Stock      service.StockService
	Users      service.UserService
	Products   repository.ProductRepository
	Categories repository.CategoryRepository
	Suppliers  repository.SupplierRepository
}

type Shell struct {
	in  *bufio.Reader
	out io.Writer
	eof bool

	auth       service.AuthService
	stock      service.StockService
	users      service.UserService
	products   repository.ProductRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
}

func New(in io.Reader, out io.Writer, deps Deps) *Shell {
	return &Shell{
		in:         bufio.NewReader(in),
		out:        out,
		auth:       deps.Auth,
		stock:      deps.Stock,
		users:      deps.Users,
		products:   deps.Products,
		categories: deps.Categories,
		suppliers:  deps.Suppliers,
	}
}

// Run drives the login screen until the user quits (or stdin closes).
func (s *Shell) Run() error {
	return s.loginScreen()
}

// ---- output helpers ----

func (s *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(args ...interface{}) {
	fmt.Fprintln(s.out, args...)
}

func (s *Shell) title(t string) {
	line := strings.Repeat("=", 60)
	s.printf("\n%s\n  %s\n%s\n", line, t, line)
}

func (s *Shell) pause() {
	s.printf("\nPress Enter to continue...")
	s.in.ReadString('\n')
}

func (s *Shell) failure(err error) {
	s.printf("\n✗ %s\n", userMessage(err))
}

func (s *Shell) success(msg string) {
	s.printf("\n✓ %s\n", msg)
}

func errValidationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", apperr.ErrValidation, fmt.Sprintf(format, args...))
}

// userMessage converts a typed error into a user-facing line.
func userMessage(err error) string {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return "not found"
	case errors.Is(err, apperr.ErrInsufficientStock):
		return "insufficient stock"
	case errors.Is(err, apperr.ErrDuplicateKey):
		return "already exists (duplicate value)"
	case errors.Is(err, apperr.ErrValidation):
		return err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return "invalid credentials"
	default:
		return fmt.Sprintf("unexpected error: %v", err)
	}
}

// ---- input helpers ----

func (s *Shell) readLine(prompt string) string {
	s.printf("%s", prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		// stdin closed; menus treat this as quitting
		s.eof = true
	}
	return strings.TrimSpace(line)
}

// readOptional returns nil on empty input, used for "keep current value"
// update prompts and optional creation fields.
func (s *Shell) readOptional(prompt string) *string {
	v := s.readLine(prompt)
	if v == "" {
		return nil
	}
	return &v
}

func (s *Shell) readInt(prompt string) int {
	for {
		v := s.readLine(prompt)
		if s.eof {
			return 0
		}
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
		s.println("Please enter a valid number.")
	}
}

func (s *Shell) readIntDefault(prompt string, def int) int {
	for {
		v := s.readLine(prompt)
		if v == "" || s.eof {
			return def
		}
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
		s.println("Please enter a valid number.")
	}
}

func (s *Shell) readOptionalInt(prompt string) *int {
	for {
		v := s.readLine(prompt)
		if v == "" || s.eof {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err == nil {
			return &n
		}
		s.println("Please enter a valid number.")
	}
}

func (s *Shell) readDecimal(prompt string) decimal.Decimal {
	for {
		v := s.readLine(prompt)
		if s.eof {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(v)
		if err == nil {
			return d
		}
		s.println("Please enter a valid amount.")
	}
}

func (s *Shell) readOptionalDecimal(prompt string) *decimal.Decimal {
	for {
		v := s.readLine(prompt)
		if v == "" || s.eof {
			return nil
		}
		d, err := decimal.NewFromString(v)
		if err == nil {
			return &d
		}
		s.println("Please enter a valid amount.")
	}
}

func (s *Shell) confirm(prompt string) bool {
	v := strings.ToLower(s.readLine(prompt + " (yes/no): "))
	return v == "yes" || v == "y"
}

// selectIndex prompts for a 1-based pick out of n rows and returns the
// 0-based index, or -1 on cancel.
func (s *Shell) selectIndex(n int, prompt string) int {
	for {
		v := s.readLine(fmt.Sprintf("\n%s (1-%d, 0=cancel): ", prompt, n))
		if v == "" || v == "0" || s.eof {
			return -1
		}
		idx, err := strconv.Atoi(v)
		if err == nil && idx >= 1 && idx <= n {
			return idx - 1
		}
		s.println("Please enter a valid number.")
	}
}
