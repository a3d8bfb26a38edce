package main

import (
	"strings"

	"github.com/spf13/cobra"
)

var (
	flagPage int
	flagType string

	flagProfileName  string
	flagProfileBio   string
	flagProfileImage string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search anime by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return output(cmd, site.Search(cmd.Context(), strings.Join(args, " ")))
	},
}

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "List the latest episodes with their publish dates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return output(cmd, site.LatestEpisodes(cmd.Context(), flagPage))
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the weekly airing schedule",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return output(cmd, site.Schedule(cmd.Context()))
	},
}

var detailsCmd = &cobra.Command{
	Use:   "details <anime or episode url>",
	Short: "Show anime details, the next episode estimate and comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return output(cmd, site.Anime(cmd.Context(), args[0]))
	},
}

var episodesCmd = &cobra.Command{
	Use:   "episodes <anime or episode url>",
	Short: "List every episode of an anime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagType == "" {
			return output(cmd, site.AnimeEpisodes(cmd.Context(), args[0]))
		}
		return output(cmd, site.Episodes(cmd.Context(), args[0], flagType))
	},
}

var serversCmd = &cobra.Command{
	Use:   "servers <episode url>",
	Short: "Decode the video servers of an episode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return output(cmd, site.Servers(cmd.Context(), args[0]))
	},
}

var downloadsCmd = &cobra.Command{
	Use:   "downloads <episode url>",
	Short: "List the download links of an episode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return output(cmd, site.Downloads(cmd.Context(), args[0]))
	},
}

var commentsCmd = &cobra.Command{
	Use:   "comments <anime url>",
	Short: "List the comments of an anime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return output(cmd, site.Comments(cmd.Context(), site.Site().Resolve(args[0])))
	},
}

var commentAddCmd = &cobra.Command{
	Use:   "add <anime url> <text>",
	Short: "Comment on an anime as --user-id",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := site.Comment(cmd.Context(), args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		return output(cmd, result)
	},
}

var commentDeleteCmd = &cobra.Command{
	Use:   "delete <comment id>",
	Short: "Delete a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return site.Uncomment(cmd.Context(), args[0])
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit the profile of --user-id",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if flagProfileName == "" && flagProfileBio == "" && flagProfileImage == "" {
			profile, err := site.Profile(cmd.Context())
			if err != nil {
				return err
			}
			return output(cmd, profile)
		}

		profile, err := site.UpdateProfile(cmd.Context(), flagProfileName, flagProfileBio, flagProfileImage)
		if err != nil {
			return err
		}
		return output(cmd, profile)
	},
}

func init() {
	latestCmd.Flags().IntVarP(&flagPage, "page", "p", 1, "Listing page, starting at 1")
	episodesCmd.Flags().StringVarP(&flagType, "type", "t", "", "TV or Movie, reads the episode list from the first episode page")

	profileCmd.Flags().StringVar(&flagProfileName, "name", "", "New display name")
	profileCmd.Flags().StringVar(&flagProfileBio, "bio", "", "New bio")
	profileCmd.Flags().StringVar(&flagProfileImage, "image", "", "New profile image link")

	commentsCmd.AddCommand(commentAddCmd, commentDeleteCmd)
}
