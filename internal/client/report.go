package client

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-paste-decrypt/internal/service"
	"github.com/MKhiriev/go-paste-decrypt/models"
)

const (
	statusSaved   = "saved"
	statusSkipped = "skipped"
	statusFailed  = "failed"
)

func renderResults(results []service.DownloadResult) string {
	idWidth := lipgloss.Width("PASTE")
	for _, res := range results {
		if w := lipgloss.Width(res.Link.PasteID); w > idWidth {
			idWidth = w
		}
	}
	idCol := lipgloss.NewStyle().Width(idWidth + 2)
	statusCol := lipgloss.NewStyle().Width(len(statusSkipped) + 2)

	var saved, skipped, failed int
	rows := make([]string, 0, len(results)+1)
	rows = append(rows, titleStyle.Render(idCol.Render("PASTE")+statusCol.Render("STATUS")+"DETAILS"))

	for _, res := range results {
		var status, detail string
		switch {
		case res.Err != nil:
			failed++
			status = errorStyle.Render(statusCol.Render(statusFailed))
			detail = res.Err.Error()
		case res.Skipped:
			skipped++
			status = faintStyle.Render(statusCol.Render(statusSkipped))
			detail = res.Record.Path
			if detail == "" {
				detail = "duplicate in this batch"
			}
		default:
			saved++
			status = okStyle.Render(statusCol.Render(statusSaved))
			detail = fmt.Sprintf("%s (%s)", res.Record.Path, formatSize(res.Record.Size))
		}
		rows = append(rows, idCol.Render(res.Link.PasteID)+status+detail)
	}

	summary := fmt.Sprintf("%d %s, %d %s, %d %s", saved, statusSaved, skipped, statusSkipped, failed, statusFailed)
	return boxStyle.Render(strings.Join(rows, "\n") + "\n\n" + faintStyle.Render(summary))
}

func renderHistory(records []models.DownloadRecord) string {
	if len(records) == 0 {
		return faintStyle.Render("no downloads recorded")
	}

	idWidth := lipgloss.Width("PASTE")
	for _, rec := range records {
		if w := lipgloss.Width(rec.PasteID); w > idWidth {
			idWidth = w
		}
	}
	idCol := lipgloss.NewStyle().Width(idWidth + 2)
	timeCol := lipgloss.NewStyle().Width(len(time.DateTime) + 2)
	sizeCol := lipgloss.NewStyle().Width(12)

	rows := make([]string, 0, len(records)+1)
	rows = append(rows, titleStyle.Render(
		idCol.Render("PASTE")+timeCol.Render("DOWNLOADED")+sizeCol.Render("SIZE")+"PATH"))

	for _, rec := range records {
		rows = append(rows,
			idCol.Render(rec.PasteID)+
				timeCol.Render(rec.DownloadedAt.Local().Format(time.DateTime))+
				sizeCol.Render(formatSize(rec.Size))+
				rec.Path)
	}

	return boxStyle.Render(strings.Join(rows, "\n"))
}

func renderBuildInfo(info models.AppBuildInfo) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("decryptor"))
	b.WriteString("\n")
	b.WriteString("Build version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Build date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Build commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return b.String()
}

func formatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return strconv.FormatInt(n, 10) + " B"
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
