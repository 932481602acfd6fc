package main

import "github.com/charmbracelet/lipgloss"

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true)
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")) // Dim gray
)
