package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/entity"
	"github.com/rocketscienceinc/tictactoe-trainer/internal/trainer"
)

const (
	maxEpisodeDigits = 9
	progressBarWidth = 30

	minReplayDelay  = 10 * time.Millisecond
	maxReplayDelay  = time.Second
	replayDelayStep = 50 * time.Millisecond
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"})
	xStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87"))
	oStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFFF"))
	cursorStyle   = lipgloss.NewStyle().Reverse(true)
	hintStyle     = lipgloss.NewStyle().Underline(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"})
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
)

type gameManager interface {
	Board() *entity.Board
	IsTraining() bool
	NewGame() error
	MakeTurn(move entity.Move) (*entity.Board, error)
	AIMoveFirst() (*entity.Board, error)
	SuggestMove() (entity.Move, error)
	StartTraining(ctx context.Context, episodes int, observers ...trainer.Observer) (<-chan trainer.Progress, error)
	StopTraining()
}

type progressMsg trainer.Progress

type trainingDoneMsg struct{}

type replayMsg trainer.Replay

type replayDoneMsg struct{}

type replayTickMsg struct {
	seq int
}

type Model struct {
	ctx     context.Context
	manager gameManager

	cursor     entity.Move
	suggestion *entity.Move
	episodes   string
	status     string

	events   <-chan trainer.Progress
	progress trainer.Progress
	spinner  spinner.Model

	// replays is set while training runs; replay is the game on screen.
	replays     *trainer.ReplayChannel
	replay      *trainer.Replay
	frame       int
	replaySeq   int
	replayDelay time.Duration
}

func NewModel(ctx context.Context, manager gameManager, episodes string, replayDelay time.Duration) *Model {
	return &Model{
		ctx:         ctx,
		manager:     manager,
		cursor:      entity.Move{Row: 1, Col: 1},
		episodes:    episodes,
		status:      "Start a new game or train the AI",
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		replayDelay: max(minReplayDelay, min(replayDelay, maxReplayDelay)),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case progressMsg:
		m.progress = trainer.Progress(msg)
		return m, waitForProgress(m.events)

	case trainingDoneMsg:
		m.events = nil
		m.replay = nil
		if m.replays != nil {
			m.replays.Close()
			m.replays = nil
		}
		if m.progress.Episode < m.progress.Total {
			m.status = "Training stopped."
		} else {
			m.status = "Training completed successfully!"
		}
		return m, nil

	case replayMsg:
		replay := trainer.Replay(msg)
		if m.replays == nil || len(replay.Moves) == 0 {
			return m, nil
		}

		m.replaySeq++
		m.replay = &replay
		m.frame = 0
		return m, m.replayTick()

	case replayTickMsg:
		if m.replay == nil || msg.seq != m.replaySeq {
			return m, nil
		}

		if m.frame < len(m.replay.Moves)-1 {
			m.frame++
			return m, m.replayTick()
		}

		// the final position stays on screen until the next game arrives
		if m.replays != nil {
			return m, waitForReplay(m.replays.Replays())
		}
		return m, nil

	case replayDoneMsg:
		return m, nil

	case spinner.TickMsg:
		if m.events == nil {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "q", "esc":
		m.manager.StopTraining()
		return m, tea.Quit

	case "up", "k":
		m.cursor.Row = (m.cursor.Row + entity.BoardSize - 1) % entity.BoardSize
	case "down", "j":
		m.cursor.Row = (m.cursor.Row + 1) % entity.BoardSize
	case "left", "h":
		m.cursor.Col = (m.cursor.Col + entity.BoardSize - 1) % entity.BoardSize
	case "right", "l":
		m.cursor.Col = (m.cursor.Col + 1) % entity.BoardSize

	case "enter", " ":
		m.play()

	case "n":
		if err := m.manager.NewGame(); err != nil {
			m.setError(err)
			break
		}
		m.suggestion = nil
		m.status = "Game started! Your turn (X)"

	case "a":
		if _, err := m.manager.AIMoveFirst(); err != nil {
			m.setError(err)
			break
		}
		m.suggestion = nil
		m.status = "AI went first. Your turn (O)"

	case "s":
		move, err := m.manager.SuggestMove()
		if err != nil {
			m.setError(err)
			break
		}
		m.suggestion = &move
		m.cursor = move
		m.status = fmt.Sprintf("AI suggests %s", move)

	case "t":
		return m, m.toggleTraining()

	case "+":
		m.replayDelay = max(minReplayDelay, m.replayDelay-replayDelayStep)
	case "-":
		m.replayDelay = min(maxReplayDelay, m.replayDelay+replayDelayStep)

	case "backspace":
		if len(m.episodes) > 0 {
			m.episodes = m.episodes[:len(m.episodes)-1]
		}

	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' && len(m.episodes) < maxEpisodeDigits {
			m.episodes += key
		}
	}

	return m, nil
}

func (m *Model) play() {
	board, err := m.manager.MakeTurn(m.cursor)
	if err != nil {
		m.setError(err)
		return
	}

	m.suggestion = nil

	if board.IsTerminal() {
		m.status = resultText(board)
		return
	}

	m.status = fmt.Sprintf("Your turn (%s)", board.CurrentPlayer())
}

func (m *Model) toggleTraining() tea.Cmd {
	if m.manager.IsTraining() {
		m.manager.StopTraining()
		m.status = "Stopping training..."
		return nil
	}

	episodes, err := trainer.ParseEpisodeCount(m.episodes)
	if err != nil {
		m.status = "Please enter a valid number of games"
		return nil
	}

	replays := trainer.NewReplayChannel()

	events, err := m.manager.StartTraining(m.ctx, episodes, replays)
	if err != nil {
		m.setError(err)
		return nil
	}

	m.events = events
	m.replays = replays
	m.replay = nil
	m.progress = trainer.Progress{Total: episodes}
	m.suggestion = nil
	m.status = fmt.Sprintf("Training AI with %d games...", episodes)

	return tea.Batch(waitForProgress(events), waitForReplay(replays.Replays()), m.spinner.Tick)
}

func (m *Model) replayTick() tea.Cmd {
	seq := m.replaySeq
	return tea.Tick(m.replayDelay, func(time.Time) tea.Msg {
		return replayTickMsg{seq: seq}
	})
}

func (m *Model) setError(err error) {
	switch {
	case errors.Is(err, apperror.ErrTrainingInProgress):
		m.status = "Wait for training to finish or press t to stop it"
	case errors.Is(err, apperror.ErrGameFinished):
		m.status = "Game is over. Press n for a new game"
	case errors.Is(err, apperror.ErrCellOccupied):
		m.status = "That cell is already taken"
	default:
		m.status = err.Error()
	}
}

func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Tic Tac Toe with Self-Play Training"))
	sb.WriteString("\n\n")

	board := m.manager.Board()
	if m.replay != nil {
		board = entity.BoardFromGrid(m.replay.Moves[m.frame].Grid)
	}
	sb.WriteString(m.renderBoard(board))
	sb.WriteString("\n")

	sb.WriteString(statusStyle.Render(m.status))
	sb.WriteString("\n")

	switch {
	case m.replay != nil:
		move := m.replay.Moves[m.frame]
		sb.WriteString(fmt.Sprintf("Replaying training game %d: %s plays %s", m.replay.Episode, move.Mover, move.Move))
	case board.IsTerminal():
		sb.WriteString(resultText(board))
	default:
		sb.WriteString(fmt.Sprintf("Current player: %s", board.CurrentPlayer()))
	}
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Games: %s   Replay delay: %s\n", m.episodes, m.replayDelay))
	sb.WriteString(m.renderProgress())
	sb.WriteString("\n\n")

	sb.WriteString(helpStyle.Render("arrows/hjkl move • enter play • n new game • a AI first • s suggest • t train/stop • 0-9 games • +/- replay speed • q quit"))
	sb.WriteString("\n")

	return sb.String()
}

func (m *Model) renderBoard(board *entity.Board) string {
	var sb strings.Builder

	for row := range entity.BoardSize {
		cells := make([]string, 0, entity.BoardSize)
		for col := range entity.BoardSize {
			move := entity.Move{Row: row, Col: col}
			cell := " " + renderMark(board.At(row, col)) + " "

			switch {
			case m.replay != nil:
			case move == m.cursor:
				cell = cursorStyle.Render(cell)
			case m.suggestion != nil && move == *m.suggestion:
				cell = hintStyle.Render(cell)
			}

			cells = append(cells, cell)
		}

		sb.WriteString(strings.Join(cells, "│"))
		sb.WriteString("\n")

		if row < entity.BoardSize-1 {
			sb.WriteString("───┼───┼───\n")
		}
	}

	return sb.String()
}

func (m *Model) renderProgress() string {
	filled := int(m.progress.Percent / 100 * progressBarWidth)
	filled = max(0, min(filled, progressBarWidth))

	bar := progressStyle.Render(strings.Repeat("█", filled)) + strings.Repeat("░", progressBarWidth-filled)

	prefix := "Training progress:"
	if m.events != nil {
		prefix = m.spinner.View() + " " + prefix
	}

	return fmt.Sprintf("%s %s %d/%d games\nX Wins: %d   O Wins: %d   Draws: %d",
		prefix, bar, m.progress.Episode, m.progress.Total,
		m.progress.WinsX, m.progress.WinsO, m.progress.Draws,
	)
}

func renderMark(mark entity.Mark) string {
	switch mark {
	case entity.MarkX:
		return xStyle.Render(string(mark))
	case entity.MarkO:
		return oStyle.Render(string(mark))
	default:
		return " "
	}
}

func resultText(board *entity.Board) string {
	switch board.Winner() {
	case entity.MarkX:
		return "X wins!"
	case entity.MarkO:
		return "O wins!"
	default:
		return "Game ended in a draw!"
	}
}

func waitForProgress(events <-chan trainer.Progress) tea.Cmd {
	return func() tea.Msg {
		progress, ok := <-events
		if !ok {
			return trainingDoneMsg{}
		}

		return progressMsg(progress)
	}
}

func waitForReplay(replays <-chan trainer.Replay) tea.Cmd {
	return func() tea.Msg {
		replay, ok := <-replays
		if !ok {
			return replayDoneMsg{}
		}

		return replayMsg(replay)
	}
}
