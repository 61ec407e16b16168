// Command fsagrade is a developer CLI for exercising the automaton
// engine and correction pipeline from the shell: validate a submission,
// run it against a string, or grade it against a reference.
package main

import (
	"fmt"
	"os"

	"github.com/ha1tch/fsagrade/internal/fixture"
	"github.com/ha1tch/fsagrade/pkg/automaton"
	"github.com/ha1tch/fsagrade/pkg/grading"
)

const usage = `fsagrade - finite-state automaton grading toolkit

Usage:
  fsagrade <command> [options]

Commands:
  validate   Report structural diagnostics for an automaton file
  run        Simulate an automaton file against an input string
  grade      Grade a student automaton against a reference

Examples:
  fsagrade validate student.json
  fsagrade run student.json ababb
  fsagrade grade student.json reference.json --config grading.yaml

Run a command without arguments to print its usage line.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "validate":
		cmdValidate(args)
	case "run":
		cmdRun(args)
	case "grade":
		cmdGrade(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}

func cmdValidate(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fsagrade validate <file.json>")
		os.Exit(1)
	}

	a, err := loadAutomaton(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", args[0], err)
		os.Exit(1)
	}

	diags := automaton.Validate(a)
	if len(diags) == 0 {
		fmt.Println("No diagnostics.")
		return
	}
	for _, d := range diags {
		fmt.Printf("[%s] %s: %s\n", d.Severity, d.Code, d.Message)
	}
}

func cmdRun(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: fsagrade run <file.json> <input>")
		os.Exit(1)
	}

	a, err := loadAutomaton(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", args[0], err)
		os.Exit(1)
	}

	accepted, trace, fault := automaton.SimulateString(a, args[1])
	fmt.Printf("trace: %v\n", trace)
	if fault != nil {
		fmt.Printf("rejected: %s (%s)\n", fault.Message, fault.Code)
		return
	}
	fmt.Printf("accepted: %v\n", accepted)
}

func cmdGrade(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: fsagrade grade <student.json> <reference.json> [--config FILE]")
		os.Exit(1)
	}

	studentPath, referencePath := args[0], args[1]
	var configPath string
	for i := 2; i < len(args); i++ {
		if args[i] == "--config" && i+1 < len(args) {
			configPath = args[i+1]
			i++
		}
	}

	student, err := loadAutomaton(studentPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", studentPath, err)
		os.Exit(1)
	}
	reference, err := loadAutomaton(referencePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", referencePath, err)
		os.Exit(1)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	result := grading.Grade(student, reference, cfg)

	fmt.Printf("is_correct: %v\n", result.IsCorrect)
	fmt.Printf("feedback: %s\n", result.Feedback)
	if result.Score != nil {
		fmt.Printf("score: %.2f\n", *result.Score)
	}
	for _, d := range result.Details.Errors {
		fmt.Printf("  error [%s] %s\n", d.Code, d.Message)
	}
	for _, d := range result.Details.Warnings {
		fmt.Printf("  warning [%s] %s\n", d.Code, d.Message)
	}
	for _, h := range result.Details.Hints {
		fmt.Printf("  hint: %s\n", h)
	}
}

func loadAutomaton(path string) (*automaton.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return fixture.Parse(data)
}

func automatonType(s string) automaton.Type {
	switch s {
	case "dfa":
		return automaton.TypeDFA
	case "nfa":
		return automaton.TypeNFA
	default:
		return automaton.TypeAny
	}
}
