// Package tui provides the Bubble Tea front end for Skyfire.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// The three periodic callbacks of a running game. Each message carries the
// generation of the model that armed it so a message outliving its game
// (after returning to the menu) is dropped instead of re-armed.
type (
	// FrameMsg drives one simulation frame.
	FrameMsg struct {
		gen int64
		At  time.Time
	}
	// SpawnMsg fires the enemy spawner.
	SpawnMsg struct {
		gen int64
		At  time.Time
	}
	// ClockMsg advances the elapsed-time counter.
	ClockMsg struct {
		gen int64
		At  time.Time
	}
)

var generations atomic.Int64

func nextGeneration() int64 {
	return generations.Add(1)
}

// frameCmd schedules the next frame at the given rate.
func frameCmd(gen int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{gen: gen, At: t}
	})
}

func spawnCmd(gen int64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SpawnMsg{gen: gen, At: t}
	})
}

func clockCmd(gen int64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return ClockMsg{gen: gen, At: t}
	})
}
