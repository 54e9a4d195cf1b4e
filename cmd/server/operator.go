package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"workshop-site/internal/service"

	"github.com/spf13/cobra"
)

var operatorCmd = &cobra.Command{
	Use:   "operator",
	Short: "Manage dashboard operators",
}

var operatorAddCmd = &cobra.Command{
	Use:   "add <name> <email>",
	Short: "Register an operator; the password is read from stdin",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(os.Stderr, "Password: ")
		password, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && password == "" {
			return fmt.Errorf("failed to read password: %w", err)
		}

		a, err := openApp(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer a.Close()

		op, err := service.NewAuthService(a.repos.Operators).Register(cmd.Context(), args[0], args[1], strings.TrimRight(password, "\r\n"))
		if err != nil {
			return err
		}
		log.Info(fmt.Sprintf("Operator %s registered", op.Email))
		return nil
	},
}

func init() {
	operatorCmd.AddCommand(operatorAddCmd)
	rootCmd.AddCommand(operatorCmd)
}
