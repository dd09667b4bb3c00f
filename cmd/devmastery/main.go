package main

import (
	"fmt"
	"os"
	"strings"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "lesson":
		err = cmdLesson(os.Args[2:])
	case "quiz":
		err = cmdQuiz(os.Args[2:])
	case "flashcard":
		err = cmdFlashcard(os.Args[2:])
	case "note":
		err = cmdNote(os.Args[2:])
	case "bookmark":
		err = cmdBookmark(os.Args[2:])
	case "stats":
		err = cmdStats(os.Args[2:])
	case "achievements":
		err = cmdAchievements()
	case "streak":
		err = cmdStreak()
	case "settings":
		err = cmdSettings(os.Args[2:])
	case "path":
		err = cmdPath(os.Args[2:])
	case "search":
		err = cmdSearch(os.Args[2:])
	case "reset":
		err = cmdReset(os.Args[2:])
	case "mcp":
		err = cmdMCP()
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Printf("devmastery %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`DevMastery - DevOps Learning Progress Tracker

Usage:
  devmastery <command> [arguments]

Learning Commands:
  lesson complete <skill>          Record a completed lesson
  quiz record <skill> <n>/<total>  Record a quiz result
  path set <beginner|intermediate|advanced>
                                   Switch the learning path

Flashcard Commands:
  flashcard add <question> <answer> [category]
  flashcard list                   List the deck by confidence bucket
  flashcard review <id> <0-100>    Record a review
  flashcard import <file>          Import a CSV or Excel deck

Notes & Bookmarks:
  note add <skill> <concept> <text>
  note list                        List all notes
  note delete <skill> <concept>
  bookmark add <id> <title> [url]
  bookmark list
  bookmark remove <id>

Progress Commands:
  stats                            Points, lessons, streaks, badges
  achievements                     Achievement catalog with earned state
  streak                           Current and longest streak
  search add <title> [path]        Record a search

Settings:
  settings show
  settings theme <dark|light>
  settings font-size <14px|16px|18px|20px>

Other:
  reset --confirm                  Discard all progress
  mcp                              Start MCP server (for editor integration)
  help                             Show this help message
  version                          Show version information

Examples:
  devmastery lesson complete docker     # Record a docker lesson
  devmastery quiz record docker 8/10    # 8 of 10 correct
  devmastery flashcard import deck.csv  # Import a flashcard deck
  devmastery stats                      # Show progress overview`)
}

// renderProgressBar creates a visual progress bar
func renderProgressBar(value float64, width int) string {
	filled := int(value * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled

	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", empty) + "]"
}
