package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keysummon/keysummon/internal/model"
	"github.com/keysummon/keysummon/internal/ui/styles"
)

// View renders the application.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	if a.width < minAppWidth || a.height < minAppHeight {
		return "window too small"
	}

	if a.mode == ModeForm && a.form != nil {
		return styles.FocusedBorderStyle.Padding(1, 2).Render(a.form.View())
	}

	var b strings.Builder
	b.WriteString(a.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(a.renderPane())
	b.WriteString("\n")
	b.WriteString(a.renderStatus())
	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	return b.String()
}

// renderTabs draws the tab row.
func (a *App) renderTabs() string {
	names := []string{"Hotkeys", "Roles", "Providers", "Settings"}
	tabs := make([]string, len(names))
	for i, name := range names {
		if Pane(i) == a.pane {
			tabs[i] = styles.TabActive.Render(name)
		} else {
			tabs[i] = styles.TabInactive.Render(name)
		}
	}
	return styles.StatusBarBrand.Render(" KeySummon ") + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderPane draws the active tab's list.
func (a *App) renderPane() string {
	switch a.pane {
	case PaneHotkeys:
		return a.renderHotkeys()
	case PaneRoles:
		return a.renderRoles()
	case PaneProviders:
		return a.renderProviders()
	case PaneSettings:
		return a.renderSettings()
	}
	return ""
}

func (a *App) renderHotkeys() string {
	if len(a.hotkeys) == 0 {
		return styles.ListItemDim.Render("no hotkeys yet, press 'a' to add one")
	}
	var b strings.Builder
	for i, h := range a.hotkeys {
		line := fmt.Sprintf("%s %-20s %-18s %s",
			styles.RenderStatusDot(h.Enabled),
			styles.TruncateWithEllipsis(h.DisplayName(), 20),
			h.Binding.Display(),
			summarizeAction(h),
		)
		b.WriteString(a.renderRow(line, i == a.cursor[PaneHotkeys], h.Enabled))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderRoles() string {
	if len(a.roles) == 0 {
		return styles.ListItemDim.Render("no roles yet, press 'a' to add one")
	}
	var b strings.Builder
	for i, r := range a.roles {
		tag := ""
		if r.Builtin {
			tag = " (builtin)"
		}
		line := fmt.Sprintf("%-24s %s",
			styles.TruncateWithEllipsis(r.Name+tag, 24),
			styles.TruncateWithEllipsis(r.SystemPrompt, 48),
		)
		b.WriteString(a.renderRow(line, i == a.cursor[PaneRoles], !r.Builtin))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderProviders() string {
	if len(a.providers) == 0 {
		return styles.ListItemDim.Render("no providers yet, press 'a' to add one")
	}
	var b strings.Builder
	for i, p := range a.providers {
		marker := " "
		if p.Default {
			marker = "★"
		}
		line := fmt.Sprintf("%s %-20s %-10s %s",
			marker,
			styles.TruncateWithEllipsis(p.Name, 20),
			p.Kind,
			p.Model,
		)
		b.WriteString(a.renderRow(line, i == a.cursor[PaneProviders], true))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderSettings() string {
	desktop := "off"
	if a.deps.Config.Notifications.Desktop {
		desktop = "on"
	}
	webhook := a.deps.Config.Notifications.WebhookURL
	if webhook == "" {
		webhook = "(none)"
	}
	rows := []string{
		"Desktop notifications: " + desktop,
		"Webhook URL: " + styles.TruncateWithEllipsis(webhook, 48),
		"Log level: " + a.deps.Config.LogLevel,
	}
	var b strings.Builder
	for i, row := range rows {
		b.WriteString(a.renderRow(row, i == a.cursor[PaneSettings], true))
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderRow(line string, selected, active bool) string {
	switch {
	case selected:
		return styles.ListItemSelected.Render(line)
	case !active:
		return styles.ListItemDim.Render(line)
	default:
		return styles.ListItem.Render(line)
	}
}

// summarizeAction describes a hotkey's action and chain in one short line.
func summarizeAction(h model.HotkeyConfig) string {
	var action string
	switch h.Action.Kind {
	case model.HotkeyCallAI:
		action = "ai: " + h.Action.AI.RoleID
	default:
		action = h.Action.Program.Path
	}
	if h.PostActions.Active() {
		action += fmt.Sprintf(" +%d actions (%s)", len(h.PostActions.Actions), h.PostActions.Trigger.Kind)
	}
	return action
}

// renderStatus draws the transient status message line.
func (a *App) renderStatus() string {
	if a.status == "" {
		return ""
	}
	if a.statusOK {
		return styles.MsgSuccess.Render(a.status)
	}
	return styles.MsgError.Render(a.status)
}

// renderStatusBar draws the bottom help bar.
func (a *App) renderStatusBar() string {
	var parts []string
	for _, binding := range a.keys.ShortHelp() {
		parts = append(parts, styles.StatusBarKey.Render(binding.Help().Key)+" "+binding.Help().Desc)
	}
	return styles.StatusBarStyle.Width(a.width).Render(strings.Join(parts, " │ "))
}
