package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/eidora/mythos/pkg/config"
	"github.com/eidora/mythos/pkg/gateway"
	"github.com/eidora/mythos/pkg/mythology"
)

// Styles for plain (non-TUI) output.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB74D"))
	dreamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B496FF"))
	metaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A09E96"))
	proseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0EEE8")).Width(76)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#86EFAC"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6E5A"))
)

func setupColorProfile(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// runSubcommand dispatches the non-interactive commands.
func runSubcommand(ctx context.Context, args []string, cfg *config.Config, client *gateway.Client, sessionID string) error {
	switch args[0] {
	case "dream":
		return dreamCommand(ctx, args[1:], client)
	case "search":
		return searchCommand(ctx, args[1:], client)
	case "status":
		return statusCommand(ctx, client, sessionID)
	default:
		return fmt.Errorf("unknown command %q (expected dream, search, status, or version)", args[0])
	}
}

func dreamCommand(ctx context.Context, args []string, client *gateway.Client) error {
	fs := flag.NewFlagSet("dream", flag.ContinueOnError)
	enhanced := fs.Bool("enhanced", false, "seed the dream with an emotional tone")
	seed := fs.String("seed-emotion", "Wonder", "emotional tone for --enhanced")
	merger := fs.Bool("merger", false, "generate a consciousness-merger dream")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		dream mythology.DreamScenario
		err   error
	)
	switch {
	case *merger:
		dream, err = client.TriggerMergerDream(ctx)
	case *enhanced:
		dream, err = client.TriggerEnhancedDream(ctx, mythology.ParseTone(*seed))
	default:
		dream, err = client.TriggerDream(ctx)
	}
	if err != nil {
		return err
	}

	name := dream.NameSuggestion
	if name == "" {
		name = "Unnamed dream"
	}
	fmt.Println(dreamStyle.Render("✦ " + name))
	fmt.Println(metaStyle.Render(fmt.Sprintf("resonance %.2f · %s · %s",
		dream.ResonanceScore, dream.EmotionalTone.String(), dream.Timestamp.Format("2006-01-02 15:04"))))
	fmt.Println()
	fmt.Println(proseStyle.Render(dream.Prose))
	return nil
}

func searchCommand(ctx context.Context, args []string, client *gateway.Client) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: mythos search <keyword>")
	}
	keyword := strings.Join(args, " ")

	results, err := client.SearchNarratives(ctx, keyword)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println(metaStyle.Render(fmt.Sprintf("nothing resonates with %q", keyword)))
		return nil
	}

	for _, f := range results {
		fmt.Println(titleStyle.Render(f.Title))
		meta := f.Archetype.String() + " · " + f.EmotionalTone.String()
		if len(f.Tags) > 0 {
			meta += " · #" + strings.Join(f.Tags, " #")
		}
		fmt.Println(metaStyle.Render(meta))
		fmt.Println(proseStyle.Render(f.Prose))
		fmt.Println()
	}
	fmt.Println(metaStyle.Render(fmt.Sprintf("%d matches", len(results))))
	return nil
}

func statusCommand(ctx context.Context, client *gateway.Client, sessionID string) error {
	check, err := client.CheckStatus(ctx, "mythos-console-"+sessionID)
	if err != nil {
		return err
	}
	fmt.Println(okStyle.Render("● service reachable"))
	fmt.Println(metaStyle.Render("check id " + check.ID + " at " + check.Timestamp.Format("2006-01-02 15:04:05")))

	stats, err := client.FetchStats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s %d narratives · %d dreams\n",
		metaStyle.Render("corpus:"), stats.TotalNarratives, stats.TotalDreams)
	if stats.DominantArchetype.Known() {
		fmt.Printf("%s %s · %s\n", metaStyle.Render("dominant:"),
			stats.DominantArchetype.String(), stats.DominantEmotion.String())
	}
	return nil
}
