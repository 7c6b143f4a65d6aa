// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shared

import (
	"github.com/aws/smithy-go"
	"github.com/charmbracelet/lipgloss"
)

var (
	StatusOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))  // green
	StatusWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // orange
	StatusError = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red

	// Muted styles labels in key: value output.
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	// Code styles service error codes.
	Code = lipgloss.NewStyle().Bold(true)
)

const (
	SymbolOK    = "✓"
	SymbolWarn  = "⚠"
	SymbolError = "✗"
)

func RenderOK(msg string) string    { return StatusOK.Render(SymbolOK) + " " + msg }
func RenderWarn(msg string) string  { return StatusWarn.Render(SymbolWarn) + " " + msg }
func RenderError(msg string) string { return StatusError.Render(SymbolError) + " " + msg }

// RenderLabel renders a dim label for key: value pairs.
func RenderLabel(label string) string {
	return Muted.Render(label)
}

// RenderFault colours a fault by who has to act on it: client faults in
// orange, server faults in red.
func RenderFault(f smithy.ErrorFault) string {
	switch f {
	case smithy.FaultClient:
		return StatusWarn.Render(f.String())
	case smithy.FaultServer:
		return StatusError.Render(f.String())
	default:
		return f.String()
	}
}
