package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/pitrio/internal/config"
	"github.com/llehouerou/pitrio/internal/keymap"
	"github.com/llehouerou/pitrio/internal/navigator"
	"github.com/llehouerou/pitrio/internal/playback"
	"github.com/llehouerou/pitrio/internal/player"
	"github.com/llehouerou/pitrio/internal/state"
	"github.com/llehouerou/pitrio/internal/stderr"
	"github.com/llehouerou/pitrio/internal/tags"
	"github.com/llehouerou/pitrio/internal/ui/styles"
)

// pollInterval is the UI refresh cadence. The progress monitor samples every
// 500ms, so polling at half that keeps the gauge from visibly stuttering.
const pollInterval = 250 * time.Millisecond

const (
	headerHeight = 1
	playerHeight = 3 // track line, gauge, status/help line
)

type tickMsg time.Time

type model struct {
	navigator navigator.Model[navigator.FileNode]
	coord     *playback.Coordinator
	advance   *playback.AutoAdvance
	stateMgr  *state.Manager
	keys      keymap.KeyMap
	help      help.Model
	theme     styles.Theme

	width  int
	height int

	// Player-visible state, refreshed on every poll tick.
	session     playback.SessionID
	elapsed     uint64
	total       uint64
	paused      bool
	nowPlaying  tags.Info
	songsPlayed int
	status      string
	statusErr   bool
}

func initialModel() (model, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, err
	}

	stateMgr, err := state.Open()
	if err != nil {
		return model{}, err
	}

	// Start path: saved state > config default > cwd.
	startPath := cfg.DefaultFolder
	var savedSelection string

	if navState, err := stateMgr.GetNavigation(); err == nil && navState != nil {
		if _, statErr := os.Stat(navState.CurrentPath); statErr == nil {
			startPath = navState.CurrentPath
			savedSelection = navState.SelectedName
		}
	}

	if startPath == "" {
		startPath, err = os.Getwd()
		if err != nil {
			stateMgr.Close()
			return model{}, err
		}
	}

	source, err := navigator.NewFileSource(startPath, cfg.ShowHidden)
	if err != nil {
		stateMgr.Close()
		return model{}, err
	}

	nav, err := navigator.New(source)
	if err != nil {
		stateMgr.Close()
		return model{}, err
	}

	if savedSelection != "" {
		nav.FocusByName(savedSelection)
	}

	songsPlayed, err := stateMgr.SongsPlayed()
	if err != nil {
		stateMgr.Close()
		return model{}, err
	}

	return model{
		navigator:   nav,
		coord:       playback.New(player.New()),
		advance:     playback.NewAutoAdvance(),
		stateMgr:    stateMgr,
		keys:        keymap.Default(),
		help:        help.New(),
		theme:       styles.Default(),
		songsPlayed: songsPlayed,
	}, nil
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) navigatorHeight() int {
	return m.height - headerHeight - playerHeight
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		msg.Height = m.navigatorHeight()
		var cmd tea.Cmd
		m.navigator, cmd = m.navigator.Update(msg)
		return m, cmd

	case navigator.NavigationChangedMsg:
		m.stateMgr.SaveNavigation(state.NavigationState{
			CurrentPath:  msg.CurrentPath,
			SelectedName: msg.SelectedName,
		})
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.coord.Stop()
			return m, tea.Quit

		case key.Matches(msg, m.keys.TogglePause):
			m.coord.TogglePause()
			m.paused = m.coord.IsPaused()
			return m, nil

		case key.Matches(msg, m.keys.Open):
			if selected := m.navigator.Selected(); selected != nil && selected.IsPlayable() {
				m.play(selected.ID())
				return m, nil
			}
		}

	case tickMsg:
		m.refreshPlayerState()
		if m.advance.Observe(m.elapsed, m.total, m.paused, time.Time(msg)) {
			m.trackCompleted()
		}
		return m, tickCmd()
	}

	var cmd tea.Cmd
	m.navigator, cmd = m.navigator.Update(msg)
	return m, cmd
}

// play starts path on the coordinator and resets the per-track view state so
// nothing from the previous track lingers on screen.
func (m *model) play(path string) {
	m.coord.Play(path)
	m.advance.Reset()
	m.elapsed = 0
	m.total = 0
	m.paused = false

	info, err := tags.Read(path)
	if err != nil {
		info = tags.Info{Title: tags.FallbackTitle(path)}
	}
	m.nowPlaying = info
	m.setStatus("Playing "+info.Title, false)
}

// refreshPlayerState drains the playback channels and updates everything the
// view renders. Runs once per poll tick.
func (m *model) refreshPlayerState() {
	if current := m.coord.CurrentSession(); current != m.session {
		m.session = current
		m.elapsed = 0
		m.total = 0
	}

	if sample, ok := playback.LatestSample(m.coord.Progress(), m.session); ok {
		m.elapsed = sample.Elapsed
		m.total = sample.Total
	}
	m.paused = m.coord.IsPaused()

	m.drainErrors()
	m.drainStderr()
}

func (m *model) drainErrors() {
	for {
		select {
		case err := <-m.coord.Errors():
			m.setStatus(err.Error(), true)
		default:
			return
		}
	}
}

func (m *model) drainStderr() {
	for {
		select {
		case line, ok := <-stderr.Messages:
			if !ok {
				return
			}
			m.setStatus(line, true)
		default:
			return
		}
	}
}

// trackCompleted fires when a track has looked finished for longer than the
// debounce window: count it, then play the next audio file in the folder.
func (m *model) trackCompleted() {
	if count, err := m.stateMgr.IncrementSongsPlayed(); err == nil {
		m.songsPlayed = count
	}

	next := m.navigator.NextPlayable()
	if next == nil {
		// Nothing left in this folder; clear the slot so the finished
		// track cannot look finished again on the next tick.
		m.coord.Stop()
		m.advance.Reset()
		m.setStatus("End of folder", false)
		return
	}

	m.stateMgr.SaveNavigation(state.NavigationState{
		CurrentPath:  m.navigator.CurrentPath(),
		SelectedName: m.navigator.SelectedName(),
	})
	m.play((*next).ID())
}

func (m *model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sections := []string{
		m.headerView(),
		m.navigator.View(),
		m.playerView(),
	}
	return strings.Join(sections, "\n")
}

func (m model) headerView() string {
	title := styles.ApplyGradient(" pitrio ", m.theme.Secondary, m.theme.AccentDir)
	counter := m.theme.Subtle().Render(fmt.Sprintf("%d songs played ", m.songsPlayed))
	return padBetween(title, counter, m.width)
}

func (m model) playerView() string {
	track := m.trackLine()
	gauge := styles.ProgressBar(m.percent(), m.width, m.theme)
	status := m.statusLine()
	return track + "\n" + gauge + "\n" + status
}

func (m model) trackLine() string {
	if m.session == 0 {
		return m.theme.Subtle().Render(" Nothing playing")
	}

	icon := "▶"
	if m.paused {
		icon = "⏸"
	}

	title := m.nowPlaying.Title
	if m.nowPlaying.Artist != "" {
		title = m.nowPlaying.Artist + " — " + title
	}

	left := m.theme.Title().Render(" " + icon + "  " + title)
	right := m.theme.Muted().Render(m.timeLabel() + " ")
	return padBetween(left, right, m.width)
}

func (m model) statusLine() string {
	var left string
	if m.statusErr {
		left = m.theme.ErrorText().Render(" " + m.status)
	} else {
		left = m.theme.Status().Render(" " + m.status)
	}
	right := m.help.View(m.keys)
	return padBetween(left, right, m.width)
}

func (m model) percent() float64 {
	return playback.Sample{Elapsed: m.elapsed, Total: m.total}.Percent()
}

func (m model) timeLabel() string {
	if m.total == 0 {
		return formatSeconds(m.elapsed) + " / --:--"
	}
	return formatSeconds(m.elapsed) + " / " + formatSeconds(m.total)
}

func formatSeconds(sec uint64) string {
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

// padBetween lays out left and right on one line of the given width,
// truncating left if the two collide.
func padBetween(left, right string, width int) string {
	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)

	padding := width - leftLen - rightLen
	if padding < 0 {
		return left
	}
	return left + strings.Repeat(" ", padding) + right
}

func main() {
	if err := stderr.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "stderr capture unavailable: %v\n", err)
	}

	m, err := initialModel()
	if err != nil {
		stderr.Stop()
		fmt.Fprintf(os.Stderr, "Error initializing: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := p.Run()

	m.stateMgr.Close()
	stderr.Stop()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", runErr)
		os.Exit(1)
	}
}
