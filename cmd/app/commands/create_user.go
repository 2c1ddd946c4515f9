package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	authDomain "github.com/allisson/jsondocs/internal/auth/domain"
	authUseCase "github.com/allisson/jsondocs/internal/auth/usecase"
)

// RunCreateUser creates a user assigned to role. When password is empty it is read from
// the first line of io.Reader.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	userUseCase authUseCase.UserUseCase,
	logger *slog.Logger,
	io IOTuple,
	username string,
	password string,
	role string,
	isActive bool,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	if password == "" {
		var err error
		password, err = promptForPassword(io)
		if err != nil {
			return err
		}
	}

	logger.Info("creating new user", slog.String("username", username), slog.String("role", role))

	user, err := userUseCase.Create(ctx, &authDomain.CreateUserInput{
		Username: username,
		Password: password,
		Role:     role,
		IsActive: isActive,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		if err := writeJSON(io.Writer, map[string]any{
			"id":        user.ID.String(),
			"username":  user.Username,
			"role":      user.Role,
			"is_active": user.IsActive,
		}); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintln(io.Writer, "User created successfully!")
		_, _ = fmt.Fprintf(io.Writer, "User ID: %s\n", user.ID.String())
		_, _ = fmt.Fprintf(io.Writer, "Username: %s\n", user.Username)
		_, _ = fmt.Fprintf(io.Writer, "Role: %s\n", user.Role)
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)
	return nil
}

func promptForPassword(io IOTuple) (string, error) {
	if io.Reader == nil {
		return "", fmt.Errorf("password is required")
	}

	_, _ = fmt.Fprint(io.Writer, "Enter password: ")
	line, err := bufio.NewReader(io.Reader).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	_, _ = fmt.Fprintln(io.Writer)
	return password, nil
}
