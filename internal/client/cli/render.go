package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/paperdock/paperdock/internal/client/controller"
	"github.com/paperdock/paperdock/internal/client/models"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	badgeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

// Renderer draws controller state as styled terminal output. It holds no
// state of its own; every call repaints from what the controller passes in.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) Notice(kind controller.NoticeKind, msg string) {
	switch kind {
	case controller.NoticeSuccess:
		fmt.Fprintln(r.out, successStyle.Render("✔ "+msg))
	case controller.NoticeError:
		fmt.Fprintln(r.out, errorStyle.Render("✘ "+msg))
	default:
		fmt.Fprintln(r.out, infoStyle.Render("ℹ "+msg))
	}
}

func (r *Renderer) AuthRequired() {
	fmt.Fprintln(r.out, dimStyle.Render("Please login or register to continue."))
}

func (r *Renderer) SessionStarted(user models.User) {
	fmt.Fprintln(r.out, titleStyle.Render(fmt.Sprintf("Welcome, %s!", user.Username)))
}

func (r *Renderer) DocumentList(docs []models.DocumentSummary, currentUser string) {
	if len(docs) == 0 {
		fmt.Fprintln(r.out, titleStyle.Render("No documents yet"))
		fmt.Fprintln(r.out, dimStyle.Render("Create your first document or use a template to get started!"))
		return
	}

	fmt.Fprintln(r.out, titleStyle.Render("Documents"))
	for _, doc := range docs {
		// The list badge is a display approximation: owned rows show
		// OWNER, shared rows READ-WRITE. The authoritative permission is
		// resolved only when the document is opened.
		badge := "READ-WRITE"
		if doc.Owner == currentUser {
			badge = "OWNER"
		}
		fmt.Fprintf(r.out, "  [%d] %s %s\n", doc.ID, titleStyle.Render(doc.Title), badgeStyle.Render(badge))
		fmt.Fprintf(r.out, "      %s\n", dimStyle.Render(doc.Preview()))
		fmt.Fprintf(r.out, "      %s\n", dimStyle.Render("Owner: "+doc.Owner))
	}
}

func (r *Renderer) Document(doc *models.DocumentDetail, editable bool) {
	if doc == nil {
		fmt.Fprintln(r.out, dimStyle.Render("Select a document to start editing"))
		return
	}

	badge := strings.ToUpper(string(doc.Permission))
	fmt.Fprintf(r.out, "%s %s\n", titleStyle.Render(doc.Title), badgeStyle.Render(badge))
	fmt.Fprintln(r.out, dimStyle.Render("Owner: "+doc.Owner))
	if !editable {
		fmt.Fprintln(r.out, dimStyle.Render("(read-only)"))
	}
	fmt.Fprintln(r.out, doc.Content)
}

func (r *Renderer) Shares(shares []models.Share) {
	if len(shares) == 0 {
		fmt.Fprintln(r.out, dimStyle.Render("No shares yet"))
		return
	}
	fmt.Fprintln(r.out, titleStyle.Render("Shared with"))
	for _, s := range shares {
		perm := strings.ReplaceAll(s.Permission, "_", " ")
		fmt.Fprintf(r.out, "  %s %s\n", s.SharedWithUser, dimStyle.Render(perm))
	}
}

func (r *Renderer) Templates(tpls []models.Template) {
	if len(tpls) == 0 {
		fmt.Fprintln(r.out, titleStyle.Render("No templates available"))
		fmt.Fprintln(r.out, dimStyle.Render("Templates will help you get started quickly with pre-formatted documents."))
		return
	}
	fmt.Fprintln(r.out, titleStyle.Render("Templates"))
	for _, tpl := range tpls {
		fmt.Fprintf(r.out, "  [%d] %s %s\n", tpl.ID, titleStyle.Render(tpl.Name), badgeStyle.Render(tpl.Category))
		fmt.Fprintf(r.out, "      %s\n", dimStyle.Render(tpl.Description))
	}
}

func (r *Renderer) TemplatePreview(tpl *models.Template) {
	fmt.Fprintln(r.out, titleStyle.Render("Template: "+tpl.Name))
	fmt.Fprintln(r.out, tpl.Description)
	fmt.Fprintln(r.out, dimStyle.Render(models.Excerpt(tpl.Content, 200)))
}

func (r *Renderer) Versions(entries []models.VersionEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(r.out, dimStyle.Render("No version history available."))
		return
	}
	fmt.Fprintln(r.out, titleStyle.Render("Version history"))
	for _, v := range entries {
		ts := v.Timestamp.Local().Format("2006-01-02 15:04:05")
		fmt.Fprintf(r.out, "  Version %d  %s\n", v.ID, dimStyle.Render("edited by "+v.EditedBy+" at "+ts))
	}
}

// StdinConfirmer answers destructive-operation prompts from the terminal.
// Anything but an explicit yes cancels.
type StdinConfirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewStdinConfirmer(reader *bufio.Reader, out io.Writer) *StdinConfirmer {
	return &StdinConfirmer{reader: reader, out: out}
}

func (c *StdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprint(c.out, prompt+" [y/N]: ")
	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
