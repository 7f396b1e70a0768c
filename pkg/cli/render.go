package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repodeck/pkg/domain/model"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

const maxDescriptionLen = 60

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode output")
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func languageLabel(lang string) string {
	if lang == "" {
		return "(all)"
	}
	return lang
}

func renderRepositories(w io.Writer, repos []*model.Repository, languages []string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "LANGUAGE", "FORKS", "CREATED", "ORIGIN", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})

	for _, repo := range repos {
		lang := repo.LanguageName()
		if lang == "" {
			lang = "-"
		}
		var desc string
		if repo.Description != nil {
			desc = truncate(*repo.Description, maxDescriptionLen)
		}

		t.Row(
			repo.FullName.String(),
			lang,
			strconv.Itoa(repo.ForksCount),
			repo.CreatedAt,
			string(repo.Origin),
			desc,
		)
	}

	labels := make([]string, len(languages))
	for i, lang := range languages {
		labels[i] = languageLabel(lang)
	}

	if _, err := fmt.Fprintf(w, "%s\n%s %s\n%s %d\n",
		t.Render(),
		labelStyle.Render("Languages:"), strings.Join(labels, ", "),
		labelStyle.Render("Total:"), len(repos),
	); err != nil {
		return goerr.Wrap(err, "failed to write repositories")
	}
	return nil
}

// formatDate renders an RFC3339 commit date like "Mar 4, 2022, 5:06 a.m." in UTC. Unparsable input is returned as is.
func formatDate(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return date
	}

	s := t.UTC().Format("Jan 2, 2006, 3:04 PM")
	return strings.NewReplacer("AM", "a.m.", "PM", "p.m.").Replace(s)
}

func renderDetail(w io.Writer, detail *model.RepositoryDetail) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(detail.FullName.String()) + "\n\n")

	if detail.Commit.Available() {
		fields := []struct {
			label string
			value *string
		}{
			{"Author", detail.Commit.AuthorName},
			{"Date", detail.Commit.AuthorDate},
			{"Message", detail.Commit.Message},
		}
		for _, f := range fields {
			value := "-"
			if f.value != nil {
				value = *f.value
			}
			if f.label == "Date" && value != "-" {
				value = formatDate(value)
			}
			b.WriteString(labelStyle.Render(f.label+":") + " " + value + "\n")
		}
	} else {
		b.WriteString(missingStyle.Render("Unable to retrieve last commit information") + "\n")
	}

	b.WriteString("\n" + detail.Readme + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write repository detail")
	}
	return nil
}
