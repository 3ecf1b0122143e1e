package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/oasis-voice/oasis/internal/conversation"
	"github.com/oasis-voice/oasis/internal/estate"
	"github.com/oasis-voice/oasis/internal/state"
)

// recentTurnWindow is how far back feature extraction looks in the
// conversation when shortlisting a project.
const recentTurnWindow = 4

var numberFmt = message.NewPrinter(language.English)

func addProjectToFavorites(_ context.Context, tc *Context, args map[string]any) (any, error) {
	projectName, okP := stringArg(args, "projectName")
	communityName, okC := stringArg(args, "communityName")
	if !okP || projectName == "" || !okC || communityName == "" {
		return "Missing project name or community name to add to favorites.", nil
	}

	// The existence check runs before the write so the acknowledgement can
	// distinguish an update from a first save.
	existed := tc.Favorites.Has(projectName)

	project, _, found := tc.Dataset.FindProject(projectName)
	if !found {
		return fmt.Sprintf("Sorry, I couldn't find details for %q to add it to your favorites.", projectName), nil
	}

	features := extractFeatures(tc.Log.Turns(), recentTurnWindow)
	if len(features) == 0 && len(project.Amenities) > 0 {
		features = project.Amenities[:min(3, len(project.Amenities))]
	} else if len(features) == 0 {
		features = []string{"Modern architecture", "Prime location in " + communityName}
	}

	_, _, err := tc.Favorites.Add(state.Favorite{
		Name:          projectName,
		Community:     communityName,
		ImageURL:      project.ImageURL,
		Features:      features,
		StartingPrice: project.StartingPrice,
		CurrencyCode:  project.CurrencyCode,
		ProjectType:   project.ProjectType,
		PropertyType:  project.Type,
		ServiceCharge: project.ServiceCharge,
		Specs:         project.Specs,
	})
	if err != nil {
		tc.Logger.Error("failed to persist favorite", "project", projectName, "error", err)
	}

	if existed {
		return fmt.Sprintf("I've updated the details for %s in your favorites list.", projectName), nil
	}
	return fmt.Sprintf("I've added %s to your favorites list. You can view it and add notes in the sidebar.", projectName), nil
}

// extractFeatures collects bulleted list items from the agent's recent
// turns, deduplicated in first-seen order.
func extractFeatures(turns []conversation.Turn, window int) []string {
	if len(turns) > window {
		turns = turns[len(turns)-window:]
	}

	var features []string
	seen := make(map[string]bool)
	for _, turn := range turns {
		if turn.Role != conversation.RoleAgent {
			continue
		}
		for _, line := range strings.Split(turn.Text, "\n") {
			trimmed := strings.TrimSpace(line)
			var item string
			switch {
			case strings.HasPrefix(trimmed, "* "):
				item = strings.TrimSpace(trimmed[2:])
			case strings.HasPrefix(trimmed, "- "):
				item = strings.TrimSpace(trimmed[2:])
			default:
				continue
			}
			if item != "" && !seen[item] {
				seen[item] = true
				features = append(features, item)
			}
		}
	}
	return features
}

func getProjectDetails(ctx context.Context, tc *Context, args map[string]any) (any, error) {
	projectName, ok := stringArg(args, "projectName")
	if !ok {
		return "Invalid project name provided.", nil
	}

	var details string
	if project, _, found := tc.Dataset.FindProject(projectName); found {
		details = formatProjectDetails(project)
	} else {
		prompt := fmt.Sprintf("Provide a summary for the real estate project %q in Dubai, including its status, handover date, starting price, and key amenities.", projectName)
		answer, err := tc.Search.GroundedAnswer(ctx, prompt)
		if err != nil {
			tc.Logger.Error("online project search failed", "project", projectName, "error", err)
			return fmt.Sprintf("I encountered an error while searching for details about %q. Please try again later.", projectName), nil
		}
		if answer == "" || strings.Contains(strings.ToLower(answer), "i don't have enough information") {
			return fmt.Sprintf("I apologize, but I couldn't find specific details for %q at this moment, both in my database and online.", projectName), nil
		}
		details = fmt.Sprintf("I found some information online for **%s**:\n\n%s", projectName, answer)
	}

	// A shortlisted project gets the details filed into its notes instead
	// of repeated in chat.
	if favorite, found := tc.Favorites.Get(projectName); found {
		note := details
		if i := strings.Index(details, "*"); i >= 0 {
			note = details[i:]
		}
		if _, err := tc.Favorites.AppendNotes(favorite.ID, "**Project Details:**\n"+note); err != nil {
			tc.Logger.Error("failed to persist favorite notes", "project", projectName, "error", err)
		}
		return fmt.Sprintf("I've found the details for %s and added them to your notes in the favorites list.", projectName), nil
	}

	return details, nil
}

func formatProjectDetails(p estate.Project) string {
	priceLabel := "Starting Price"
	if p.ProjectType == estate.ForRent {
		priceLabel = "Annual Rent"
	}

	handoverInfo := ""
	if p.ProjectType == estate.OffPlan {
		handoverInfo = ", with handover around " + formatHandover(p.HandoverDate)
	}

	details := []string{
		fmt.Sprintf("**Location**: %s", p.LocationDescription),
		fmt.Sprintf("**Status**: %s%s.", p.ProjectType, handoverInfo),
		fmt.Sprintf("**%s**: %s %s", priceLabel, p.CurrencyCode, numberFmt.Sprintf("%d", p.StartingPrice)),
	}

	if p.Specs != nil && p.ProjectType != estate.ForRent {
		details = append(details, fmt.Sprintf("**Avg. Price/SqFt**: %s %s",
			p.CurrencyCode, numberFmt.Sprintf("%d", p.Specs.AvgPricePerSqft)))

		units := make([]string, 0, len(p.Specs.UnitTypes))
		for _, ut := range p.Specs.UnitTypes {
			units = append(units, fmt.Sprintf("    *   %s: ~%s sq. ft.", ut.UnitType, numberFmt.Sprintf("%d", ut.AvgSizeSqft)))
		}
		details = append(details, "**Available Unit Sizes**:\n"+strings.Join(units, "\n"))
	}

	ownership := "Leasehold"
	if p.IsFreehold {
		ownership = "Freehold"
	}
	details = append(details, fmt.Sprintf("**Ownership**: %s", ownership))

	amenities := make([]string, 0, len(p.Amenities))
	for _, a := range p.Amenities {
		amenities = append(amenities, "    *   "+a)
	}
	details = append(details, "**Key Amenities**:\n"+strings.Join(amenities, "\n"))

	return fmt.Sprintf("Here are the details for **%s**:\n\n*   %s", p.Name, strings.Join(details, "\n*   "))
}

func formatHandover(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("January 2006")
}
