package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/safekids/app-safekids/internal/models"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errEmptyPassword = errors.New("password must not be empty")

type userAdmin interface {
	CreateUser(ctx context.Context, email, password, nome string, tipo models.TipoUsuario) (*models.Usuario, error)
	ChangePassword(ctx context.Context, email, password string) error
}

type app struct {
	users         userAdmin
	ensureIndexes func(ctx context.Context) error
	close         func(ctx context.Context) error

	out          io.Writer
	readPassword func(prompt string) (string, error)
	setup        func(a *app) error
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "admin",
		Short:        "SafeKids administration",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.setup == nil {
				return nil
			}
			return a.setup(a)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.close == nil {
				return nil
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return a.close(ctx)
		},
	}
	root.AddCommand(newAddUserCmd(a), newResetPasswordCmd(a), newEnsureIndexesCmd(a))
	return root
}

func newAddUserCmd(a *app) *cobra.Command {
	var email, nome, tipo string
	cmd := &cobra.Command{
		Use:   "adduser",
		Short: "Create a console account; the password is prompted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := models.TipoUsuario(tipo)
			if !t.Valid() {
				return fmt.Errorf("invalid tipo %q: use %s or %s", tipo, models.TipoServants, models.TipoParents)
			}
			password, err := promptPassword(a)
			if err != nil {
				return err
			}
			usuario, err := a.users.CreateUser(cmd.Context(), email, password, nome, t)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "created %s (%s) id=%s\n", usuario.Email, usuario.Tipo, usuario.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&nome, "nome", "", "display name")
	cmd.Flags().StringVar(&tipo, "tipo", string(models.TipoServants), "account type (servants or parents)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newResetPasswordCmd(a *app) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "resetpassword",
		Short: "Replace the password of an account; the password is prompted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := promptPassword(a)
			if err != nil {
				return err
			}
			if err := a.users.ChangePassword(cmd.Context(), email, password); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "password changed for %s\n", strings.ToLower(strings.TrimSpace(email)))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "login email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newEnsureIndexesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-indexes",
		Short: "Create the MongoDB indexes the API relies on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			if err := a.ensureIndexes(ctx); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "indexes ensured")
			return nil
		},
	}
}

func promptPassword(a *app) (string, error) {
	password, err := a.readPassword("Enter password: ")
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", errEmptyPassword
	}
	return password, nil
}

// terminalPassword reads without echo from a terminal, or one line from a pipe
func terminalPassword(in *os.File, prompt io.Writer) func(string) (string, error) {
	return func(msg string) (string, error) {
		fd := int(in.Fd())
		if !term.IsTerminal(fd) {
			line, err := bufio.NewReader(in).ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return "", err
			}
			return strings.TrimRight(line, "\r\n"), nil
		}
		fmt.Fprint(prompt, msg)
		pwd, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		return string(pwd), nil
	}
}
