package operations

import (
	"fmt"
	"sort"
	"strings"

	"github.com/s0up4200/datacite/metadata"
)

// FormatOptions contains options for formatting output
type FormatOptions struct {
	ShowDetails bool
	ShowCounts  bool
}

// ConsoleFormatter provides console output formatting for DOIs and events
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// branch returns the tree prefix and the indent for the children of item i
func branch(i, n int) (string, string) {
	if i == n-1 {
		return "╰", "    "
	}
	return "├", "│   "
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// FormatDOIList formats a list of DOIs for console display
func (f *ConsoleFormatter) FormatDOIList(dois []metadata.DOIData, options FormatOptions) string {
	if len(dois) == 0 {
		return "No DOIs found\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", plural(len(dois), "DOI"), len(dois))

	for i, doi := range dois {
		prefix, indent := branch(i, len(dois))
		f.formatDOI(&sb, doi, prefix, indent, options)

		if i < len(dois)-1 {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func (f *ConsoleFormatter) formatDOI(sb *strings.Builder, doi metadata.DOIData, prefix, indent string, options FormatOptions) {
	a := doi.Attributes

	title := doi.Title()
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(sb, "%s── %s\n", prefix, a.DOI)
	fmt.Fprintf(sb, "%s%s", indent, title)
	if a.PublicationYear > 0 {
		fmt.Fprintf(sb, " (%d)", a.PublicationYear)
	}
	sb.WriteString("\n")

	if names := a.Creators.Names(); len(names) > 0 {
		fmt.Fprintf(sb, "%sCreators: %s\n", indent, strings.Join(names, "; "))
	}

	var parts []string
	if a.State != "" {
		parts = append(parts, "State: "+a.State.String())
	}
	if a.Types != nil && a.Types.ResourceTypeGeneral != "" {
		parts = append(parts, "Type: "+a.Types.ResourceTypeGeneral.String())
	}
	if a.Publisher != nil && a.Publisher.Name != "" {
		parts = append(parts, "Publisher: "+a.Publisher.Name)
	}
	if len(parts) > 0 {
		fmt.Fprintf(sb, "%s%s\n", indent, strings.Join(parts, " | "))
	}

	if options.ShowCounts {
		fmt.Fprintf(sb, "%sCitations: %d | Views: %d | Downloads: %d\n",
			indent, a.CitationCount, a.ViewCount, a.DownloadCount)
	}

	if !options.ShowDetails {
		return
	}

	if a.URL != "" {
		fmt.Fprintf(sb, "%sURL: %s\n", indent, a.URL)
	}
	if client := doi.Relationships.ClientID(); client != "" {
		fmt.Fprintf(sb, "%sClient: %s\n", indent, client)
	}

	var dateParts []string
	if !a.Created.IsZero() {
		dateParts = append(dateParts, "Created: "+a.Created.Format("2006-01-02"))
	}
	if a.Registered != nil && !a.Registered.IsZero() {
		dateParts = append(dateParts, "Registered: "+a.Registered.Format("2006-01-02"))
	}
	if !a.Updated.IsZero() {
		dateParts = append(dateParts, "Updated: "+a.Updated.Format("2006-01-02"))
	}
	if len(dateParts) > 0 {
		fmt.Fprintf(sb, "%s%s\n", indent, strings.Join(dateParts, " | "))
	}

	if len(a.Subjects) > 0 {
		subjects := make([]string, len(a.Subjects))
		for i, s := range a.Subjects {
			subjects[i] = s.Subject
		}
		fmt.Fprintf(sb, "%sSubjects: %s\n", indent, strings.Join(subjects, ", "))
	}

	if abstract, ok := a.Descriptions.Abstract(); ok {
		fmt.Fprintf(sb, "%sAbstract: %s\n", indent, truncate(abstract.Description, 120))
	}
}

// FormatDOIsToDelete formats DOIs for deletion confirmation
func (f *ConsoleFormatter) FormatDOIsToDelete(ids []string) string {
	if len(ids) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s to be deleted (%d):\n\n", plural(len(ids), "DOI"), len(ids))

	for i, id := range ids {
		prefix, _ := branch(i, len(ids))
		fmt.Fprintf(&sb, "%s── %s\n", prefix, id)
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatEventList formats a list of events for console display
func (f *ConsoleFormatter) FormatEventList(events []metadata.EventData) string {
	if len(events) == 0 {
		return "No events found\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", plural(len(events), "Event"), len(events))

	for i, event := range events {
		prefix, indent := branch(i, len(events))
		a := event.Attributes

		fmt.Fprintf(&sb, "%s── %s\n", prefix, event.ID)
		fmt.Fprintf(&sb, "%s%s %s %s\n", indent, a.SubjID, a.RelationTypeID, a.ObjID)

		parts := []string{"Source: " + string(a.SourceID), fmt.Sprintf("Total: %d", a.Total)}
		if !a.OccurredAt.IsZero() {
			parts = append(parts, "Occurred: "+a.OccurredAt.Format("2006-01-02"))
		}
		fmt.Fprintf(&sb, "%s%s\n", indent, strings.Join(parts, " | "))

		if i < len(events)-1 {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatActivities formats the change history of a DOI
func (f *ConsoleFormatter) FormatActivities(activities []metadata.ActivityData) string {
	if len(activities) == 0 {
		return "No activities found\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nActivities (%d):\n\n", len(activities))

	for i, activity := range activities {
		prefix, indent := branch(i, len(activities))
		a := activity.Attributes

		fmt.Fprintf(&sb, "%s── v%d %s (%s)\n", prefix, a.Version, a.Action, a.GeneratedAtTime)
		if a.WasAttributedTo != "" {
			fmt.Fprintf(&sb, "%sBy: %s\n", indent, a.WasAttributedTo)
		}
		if len(a.Changes) > 0 {
			keys := make([]string, 0, len(a.Changes))
			for k := range a.Changes {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(&sb, "%sChanged: %s\n", indent, strings.Join(keys, ", "))
		}

		if i < len(activities)-1 {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
