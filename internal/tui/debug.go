package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/javiermolinar/murkoff/internal/desktop"
	"github.com/javiermolinar/murkoff/internal/puzzle"
	"github.com/javiermolinar/murkoff/internal/session"
)

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "murkoff-debug.log"

// debugLog receives TUI events. It is a no-op logger unless --debug is set.
var debugLog = zap.NewNop()

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = zap.NewNop()
		return nil
	}
	logger, err := newDebugLogger(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}
	debugLog = logger
	debugLog.Info("DEBUG_START", zap.String("log_file", DebugLogPath))
	return nil
}

func newDebugLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.Encoding = "json"
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.MessageKey = "event"
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cfg.Sampling = nil
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// CloseDebugLogger flushes the debug log.
func CloseDebugLogger() {
	debugLog.Info("DEBUG_END")
	_ = debugLog.Sync()
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	debugLog.Debug("KEY_PRESS",
		zap.String("key", msg.String()),
		zap.Int("type", int(msg.Type)),
	)
}

// LogMouse logs a mouse event that reached the desktop.
func LogMouse(msg tea.MouseMsg, mode desktop.Mode) {
	if msg.Action == tea.MouseActionMotion && mode == desktop.ModeIdle {
		return
	}
	debugLog.Debug("MOUSE",
		zap.String("mouse", msg.String()),
		zap.Int("x", msg.X),
		zap.Int("y", msg.Y),
		zap.Stringer("mode", mode),
	)
}

// LogStageChange logs a session stage transition.
func LogStageChange(to session.Stage) {
	debugLog.Info("STAGE_CHANGE", zap.Stringer("to", to))
}

// LogDrop logs a committed icon drop.
func LogDrop(drop desktop.Drop) {
	debugLog.Info("DROP",
		zap.String("icon", drop.IconID),
		zap.Int("from_col", drop.From.Col),
		zap.Int("from_row", drop.From.Row),
		zap.Int("target_col", drop.Target.Col),
		zap.Int("target_row", drop.Target.Row),
		zap.Int("to_col", drop.To.Col),
		zap.Int("to_row", drop.To.Row),
	)
}

// LogMarquee logs the selection left by a marquee.
func LogMarquee(selected []string) {
	debugLog.Debug("MARQUEE", zap.Strings("selected", selected))
}

// LogPuzzle logs a puzzle snapshot after it changed.
func LogPuzzle(r puzzle.Round) {
	debugLog.Debug("PUZZLE",
		zap.String("kind", string(r.Kind)),
		zap.Int("round", r.Index),
		zap.Int("lives", r.Lives),
		zap.Stringer("phase", r.Phase),
		zap.Int("progress", r.Progress),
	)
}

// LogRestore logs a folder brought back from the recycle bin.
func LogRestore(itemID, name string, placed bool) {
	debugLog.Info("RESTORE",
		zap.String("item", itemID),
		zap.String("name", name),
		zap.Bool("placed", placed),
	)
}

// LogError logs an error.
func LogError(context string, err error) {
	debugLog.Warn("ERROR", zap.String("context", context), zap.Error(err))
}
