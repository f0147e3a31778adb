package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		for _, p := range v {
			o.printPlayer(p)
			fmt.Println()
		}
	case CountResult:
		fmt.Println(int(v))
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Race           string `json:"race"`
	Profession     string `json:"profession"`
	Birthday       int64  `json:"birthday"`
	Banned         bool   `json:"banned"`
	Experience     int32  `json:"experience"`
	Level          int32  `json:"level"`
	UntilNextLevel int32  `json:"untilNextLevel"`
}

// CountResult is the bare integer returned by the count endpoint
type CountResult int

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("ID:           %d\n", p.ID)
	fmt.Printf("Name:         %s\n", p.Name)
	if p.Title != "" {
		fmt.Printf("Title:        %s\n", p.Title)
	}
	fmt.Printf("Race:         %s\n", p.Race)
	fmt.Printf("Profession:   %s\n", p.Profession)
	fmt.Printf("Birthday:     %s\n", time.UnixMilli(p.Birthday).UTC().Format("2006-01-02"))
	fmt.Printf("Banned:       %t\n", p.Banned)
	fmt.Printf("Experience:   %d\n", p.Experience)
	fmt.Printf("Level:        %d (next in %d)\n", p.Level, p.UntilNextLevel)
}
