package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"biodex/internal/detail"
	"biodex/internal/dialog"
	"biodex/internal/domain"
	appErrors "biodex/internal/errors"
	"biodex/internal/schema"
)

// speciesFieldFlags maps flag names to form field keys.
var speciesFieldFlags = []struct {
	flag  string
	key   string
	usage string
}{
	{"scientific-name", schema.KeyScientificName, "Scientific name (required)"},
	{"common-name", schema.KeyCommonName, "Common name"},
	{"kingdom", schema.KeyKingdom, "Kingdom (" + strings.Join(domain.KingdomNames(), ", ") + ")"},
	{"population", schema.KeyTotalPopulation, "Total population"},
	{"image", schema.KeyImage, "Image URL"},
	{"description", schema.KeyDescription, "Description"},
}

func newSpeciesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "species",
		Aliases: []string{"sp"},
		Short:   "List and edit species",
	}
	cmd.AddCommand(newSpeciesListCmd(c))
	cmd.AddCommand(newSpeciesShowCmd(c))
	cmd.AddCommand(newSpeciesAddCmd(c))
	cmd.AddCommand(newSpeciesEditCmd(c))
	cmd.AddCommand(newSpeciesDeleteCmd(c))
	return cmd
}

func newSpeciesListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List species",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.openClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			list, err := client.ListSpecies(cmd.Context())
			if err != nil {
				return err
			}
			c.printSpeciesTable(list)
			return nil
		},
	}
}

func newSpeciesShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one species",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSpeciesID(args[0])
			if err != nil {
				return err
			}
			client, err := c.openClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			s, err := client.GetSpecies(cmd.Context(), id)
			if err != nil {
				return err
			}
			c.printDetail(detail.Species(s))
			return nil
		},
	}
}

func newSpeciesAddCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a species",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := schema.DefaultDraft()
			if errs := applyFieldFlags(cmd, &draft); errs != nil {
				return c.reportInvalid(errs)
			}
			author, err := c.author()
			if err != nil {
				return err
			}
			// Reject invalid input before opening the store.
			if _, errs := schema.Validate(draft); errs != nil {
				return c.reportInvalid(errs)
			}

			client, err := c.openClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			ctrl := dialog.NewAdd(client, author, func() schema.Draft { return draft })
			return c.submit(cmd.Context(), ctrl)
		},
	}
	addFieldFlags(cmd)
	return cmd
}

func newSpeciesEditCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a species; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSpeciesID(args[0])
			if err != nil {
				return err
			}
			client, err := c.openClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			current, err := client.GetSpecies(cmd.Context(), id)
			if err != nil {
				return err
			}
			draft := schema.DraftFrom(current)
			if errs := applyFieldFlags(cmd, &draft); errs != nil {
				return c.reportInvalid(errs)
			}

			ctrl := dialog.NewEdit(client, id, func() schema.Draft { return draft })
			return c.submit(cmd.Context(), ctrl)
		},
	}
	addFieldFlags(cmd)
	return cmd
}

func newSpeciesDeleteCmd(c *cli) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a species",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseSpeciesID(args[0])
			if err != nil {
				return err
			}
			client, err := c.openClient(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			s, err := client.GetSpecies(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !yes {
				if !c.isTTY(c.in) {
					return exitError{code: exitUsage, err: errors.New("refusing to delete without --yes when stdin is not a terminal")}
				}
				kind := dialog.KindDelete
				ok, err := c.confirm(c, kind.Title()+": "+s.ScientificName, kind.Description())
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(c.out, "Cancelled.")
					return nil
				}
			}
			return c.submit(cmd.Context(), dialog.NewDelete(client, id))
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func addFieldFlags(cmd *cobra.Command) {
	for _, f := range speciesFieldFlags {
		cmd.Flags().String(f.flag, "", f.usage)
	}
}

// applyFieldFlags writes every flag the user set into draft. Kingdom names
// are matched case-insensitively and stored in canonical form; values that a
// field cannot hold at all, such as an unknown kingdom, are reported here.
func applyFieldFlags(cmd *cobra.Command, draft *schema.Draft) schema.FieldErrors {
	errs := schema.FieldErrors{}
	for _, f := range speciesFieldFlags {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		raw, _ := cmd.Flags().GetString(f.flag)
		if f.key == schema.KeyKingdom {
			k, err := domain.ParseKingdom(raw)
			if err != nil {
				errs[f.key] = schema.MsgInvalidKingdom
				continue
			}
			raw = string(k)
		}
		if !draft.Set(f.key, raw) {
			errs[f.key] = schema.MsgInvalidKingdom
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// submit drives ctrl through one open → submit → resolve cycle.
func (c *cli) submit(ctx context.Context, ctrl *dialog.Controller) error {
	ctrl.Open()
	dispatch, ok := ctrl.Submit()
	if !ok {
		var errs schema.FieldErrors
		if errors.As(ctrl.Err(), &errs) {
			return c.reportInvalid(errs)
		}
		if err := ctrl.Err(); err != nil {
			return fmt.Errorf("%s rejected: %w", ctrl.Kind(), err)
		}
		return fmt.Errorf("%s was not submitted", ctrl.Kind())
	}

	result := dispatch(ctx)
	n := ctrl.Resolve(result).Notification
	if result.Err != nil {
		return appErrors.New(appErrors.CodeRemoteFailed, n.Description, result.Err)
	}
	c.printNotification(n)
	return nil
}

func (c *cli) reportInvalid(errs schema.FieldErrors) error {
	for _, f := range schema.Fields() {
		if msg, ok := errs[f.Key]; ok {
			fmt.Fprintf(c.errOut, "%s: %s\n", f.Label, msg)
		}
	}
	return exitError{code: exitInvalid, err: errs}
}

func parseSpeciesID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, exitError{code: exitUsage, err: fmt.Errorf("invalid species id %q", raw)}
	}
	return id, nil
}
