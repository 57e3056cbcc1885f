// Package shell drives the interactive session: it collects input, calls the
// auth, catalog and order services, and renders results. Domain errors are
// caught at the point of use and printed; they never terminate the session.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/warungdev/tokocli/internal/models"
	"github.com/warungdev/tokocli/internal/service"
)

var errInvalidInput = errors.New("invalid input")

type Shell struct {
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Orders  *service.OrderService

	in  *bufio.Scanner
	out io.Writer
}

func New(auth *service.AuthService, catalog *service.CatalogService, orders *service.OrderService, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		Auth:    auth,
		Catalog: catalog,
		Orders:  orders,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

func (s *Shell) Run(ctx context.Context) {
	for {
		s.clear()
		s.printf("=== TOKO CLI ===\n")
		s.printf("1. Login Admin\n")
		s.printf("2. Login Customer\n")
		s.printf("3. Register Customer\n")
		s.printf("4. Exit\n")

		switch s.readLine("Choose: ") {
		case "1":
			s.login(ctx, models.RoleAdmin)
		case "2":
			s.login(ctx, models.RoleCustomer)
		case "3":
			s.registerCustomer(ctx)
		case "4":
			return
		}
	}
}

func (s *Shell) login(ctx context.Context, role string) {
	s.clear()
	s.printf("=== LOGIN %s ===\n", strings.ToUpper(role))

	username := s.readLine("Username: ")
	password := s.readLine("Password: ")

	user, err := s.Auth.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			s.printf("Login failed: invalid username or password\n")
		} else {
			s.printf("Login failed: %v\n", err)
		}
		s.pause()
		return
	}
	if user.Role != role {
		s.printf("Login failed: account role does not match\n")
		s.pause()
		return
	}

	if role == models.RoleAdmin {
		s.adminMenu(ctx)
	} else {
		s.customerMenu(ctx, user)
	}
}

func (s *Shell) registerCustomer(ctx context.Context) {
	s.clear()
	s.printf("=== REGISTER CUSTOMER ===\n")

	username := s.readLine("Username: ")
	password := s.readLine("Password: ")

	err := s.Auth.Register(ctx, username, password, models.RoleCustomer)
	switch {
	case err == nil:
		s.printf("Registration successful\n")
	case errors.Is(err, service.ErrValidation):
		s.printf("Registration failed: username and password must not be empty\n")
	default:
		s.printf("Registration failed: %v\n", err)
	}
	s.pause()
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) clear() {
	fmt.Fprint(s.out, "\033[H\033[2J")
}

func (s *Shell) pause() {
	s.readLine("Enter...")
}

func (s *Shell) readLine(label string) string {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *Shell) readInt(label string) (int, error) {
	v, err := strconv.Atoi(s.readLine(label))
	if err != nil {
		return 0, errInvalidInput
	}
	return v, nil
}

func (s *Shell) readUint(label string) (uint, error) {
	return s.readUintFrom(s.readLine(label))
}

func (s *Shell) readUintFrom(line string) (uint, error) {
	v, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		return 0, errInvalidInput
	}
	return uint(v), nil
}

func (s *Shell) readFloat(label string) (float64, error) {
	v, err := strconv.ParseFloat(s.readLine(label), 64)
	if err != nil {
		return 0, errInvalidInput
	}
	return v, nil
}
