package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player record commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerCountCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerDeleteCmd())

	return cmd
}

// filterFlags holds the filter query values shared by list and count
type filterFlags struct {
	name, title, race, profession string
	after, before                 int64
	banned                        string
	minExperience, maxExperience  int32
	minLevel, maxLevel            int32
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Substring match on name")
	cmd.Flags().StringVar(&f.title, "title", "", "Substring match on title")
	cmd.Flags().StringVar(&f.race, "race", "", "Race filter")
	cmd.Flags().StringVar(&f.profession, "profession", "", "Profession filter")
	cmd.Flags().Int64Var(&f.after, "after", 0, "Born at or after (epoch millis)")
	cmd.Flags().Int64Var(&f.before, "before", 0, "Born at or before (epoch millis)")
	cmd.Flags().StringVar(&f.banned, "banned", "", "Banned filter (true/false)")
	cmd.Flags().Int32Var(&f.minExperience, "min-experience", -1, "Minimum experience")
	cmd.Flags().Int32Var(&f.maxExperience, "max-experience", -1, "Maximum experience")
	cmd.Flags().Int32Var(&f.minLevel, "min-level", -1, "Minimum level")
	cmd.Flags().Int32Var(&f.maxLevel, "max-level", -1, "Maximum level")
}

func (f *filterFlags) query(cmd *cobra.Command) url.Values {
	q := url.Values{}
	if f.name != "" {
		q.Set("name", f.name)
	}
	if f.title != "" {
		q.Set("title", f.title)
	}
	if f.race != "" {
		q.Set("race", f.race)
	}
	if f.profession != "" {
		q.Set("profession", f.profession)
	}
	if cmd.Flags().Changed("after") {
		q.Set("after", fmt.Sprintf("%d", f.after))
	}
	if cmd.Flags().Changed("before") {
		q.Set("before", fmt.Sprintf("%d", f.before))
	}
	if f.banned != "" {
		q.Set("banned", f.banned)
	}
	if cmd.Flags().Changed("min-experience") {
		q.Set("minExperience", fmt.Sprintf("%d", f.minExperience))
	}
	if cmd.Flags().Changed("max-experience") {
		q.Set("maxExperience", fmt.Sprintf("%d", f.maxExperience))
	}
	if cmd.Flags().Changed("min-level") {
		q.Set("minLevel", fmt.Sprintf("%d", f.minLevel))
	}
	if cmd.Flags().Changed("max-level") {
		q.Set("maxLevel", fmt.Sprintf("%d", f.maxLevel))
	}
	return q
}

func newPlayerListCmd() *cobra.Command {
	var filters filterFlags
	var pageNumber, pageSize int
	var order string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := filters.query(cmd)
			if cmd.Flags().Changed("page-number") {
				q.Set("pageNumber", fmt.Sprintf("%d", pageNumber))
			}
			if cmd.Flags().Changed("page-size") {
				q.Set("pageSize", fmt.Sprintf("%d", pageSize))
			}
			if order != "" {
				q.Set("order", order)
			}

			path := "/players"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			var result []Player
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	filters.register(cmd)
	cmd.Flags().IntVar(&pageNumber, "page-number", 0, "Page number (0-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", 3, "Page size")
	cmd.Flags().StringVar(&order, "order", "", "Sort order: ID, NAME, EXPERIENCE, BIRTHDAY, LEVEL")

	return cmd
}

func newPlayerCountCmd() *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count players matching a filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := filters.query(cmd)

			path := "/players/count"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			var result CountResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	filters.register(cmd)

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a player by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			if err := client.Get("/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

// playerPayload builds the JSON body for create/update from flags;
// only flags the user set are included
func playerPayload(cmd *cobra.Command, name, title, race, profession string, birthday int64, banned bool, experience int32) map[string]any {
	body := map[string]any{}
	if cmd.Flags().Changed("name") {
		body["name"] = name
	}
	if cmd.Flags().Changed("title") {
		body["title"] = title
	}
	if cmd.Flags().Changed("race") {
		body["race"] = race
	}
	if cmd.Flags().Changed("profession") {
		body["profession"] = profession
	}
	if cmd.Flags().Changed("birthday") {
		body["birthday"] = birthday
	}
	if cmd.Flags().Changed("banned") {
		body["banned"] = banned
	}
	if cmd.Flags().Changed("experience") {
		body["experience"] = experience
	}
	return body
}

func registerPayloadFlags(cmd *cobra.Command, name, title, race, profession *string, birthday *int64, banned *bool, experience *int32) {
	cmd.Flags().StringVar(name, "name", "", "Player name")
	cmd.Flags().StringVar(title, "title", "", "Player title")
	cmd.Flags().StringVar(race, "race", "", "Race")
	cmd.Flags().StringVar(profession, "profession", "", "Profession")
	cmd.Flags().Int64Var(birthday, "birthday", 0, "Birthday (epoch millis)")
	cmd.Flags().BoolVar(banned, "banned", false, "Banned flag")
	cmd.Flags().Int32Var(experience, "experience", 0, "Experience")
}

func newPlayerCreateCmd() *cobra.Command {
	var name, title, race, profession string
	var birthday int64
	var banned bool
	var experience int32

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := playerPayload(cmd, name, title, race, profession, birthday, banned, experience)

			var result Player
			if err := client.Post("/players", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	registerPayloadFlags(cmd, &name, &title, &race, &profession, &birthday, &banned, &experience)

	return cmd
}

func newPlayerUpdateCmd() *cobra.Command {
	var name, title, race, profession string
	var birthday int64
	var banned bool
	var experience int32

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a player (only the flags you set are changed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := playerPayload(cmd, name, title, race, profession, birthday, banned, experience)

			var result Player
			if err := client.Post("/players/"+args[0], body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	registerPayloadFlags(cmd, &name, &title, &race, &profession, &birthday, &banned, &experience)

	return cmd
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/players/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Player %s deleted", args[0]))
			return nil
		},
	}
}
