package main

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"biodex/internal/detail"
	"biodex/internal/domain"
	appErrors "biodex/internal/errors"
	"biodex/internal/store"
)

func newUsersCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Browse user profiles",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.openClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			list, err := client.ListProfiles(cmd.Context())
			if err != nil {
				return err
			}
			c.printProfileTable(list)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <id|email>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.openClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			p, err := findProfile(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			c.printDetail(detail.Profile(p))
			return nil
		},
	})
	return cmd
}

// findProfile resolves a user by id, or by email when ref is not a uuid.
func findProfile(ctx context.Context, client store.Client, ref string) (domain.Profile, error) {
	ref = strings.TrimSpace(ref)
	if id, err := uuid.Parse(ref); err == nil {
		return client.GetProfile(ctx, id)
	}
	list, err := client.ListProfiles(ctx)
	if err != nil {
		return domain.Profile{}, err
	}
	for _, p := range list {
		if strings.EqualFold(p.Email, ref) {
			return p, nil
		}
	}
	return domain.Profile{}, appErrors.New(appErrors.CodeNotFound, "no user with email "+ref, nil)
}
