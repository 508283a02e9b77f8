package wordguess

import (
	"strings"
	"testing"

	"github.com/dkrasnov/puzzlebox/internal/core"
)

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = 60
	cfg.ScreenH = 20
	cfg.Seed = 42
	return cfg
}

func stepWith(g *Game, actions ...core.Action) {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	g.Step(in)
}

// moveCursorTo drives the alphabet cursor to the given letter index.
func moveCursorTo(t *testing.T, g *Game, idx int) {
	t.Helper()
	for g.cursor != idx {
		before := g.cursor
		switch {
		case g.cursor/alphabetCols < idx/alphabetCols:
			stepWith(g, core.ActionDown)
		case g.cursor/alphabetCols > idx/alphabetCols:
			stepWith(g, core.ActionUp)
		case g.cursor < idx:
			stepWith(g, core.ActionRight)
		default:
			stepWith(g, core.ActionLeft)
		}
		if g.cursor == before {
			t.Fatalf("cursor stuck at %d while seeking %d", g.cursor, idx)
		}
	}
}

func guess(t *testing.T, g *Game, letter rune) {
	t.Helper()
	moveCursorTo(t, g, int(letter-'A'))
	stepWith(g, core.ActionConfirm)
}

func TestResetPicksWordDeterministically(t *testing.T) {
	a := New()
	b := New()
	a.Reset(testConfig())
	b.Reset(testConfig())

	if a.word != b.word {
		t.Fatalf("same seed picked different words: %q vs %q", a.word, b.word)
	}
	if a.word == "" {
		t.Fatal("no word selected")
	}
	for _, r := range a.word {
		if r < 'A' || r > 'Z' {
			t.Fatalf("word %q contains non-uppercase rune %q", a.word, r)
		}
	}
}

func TestMaskedWordHidesUnguessedLetters(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.word = "GOPHER"
	g.guessed = [26]bool{}

	if got := g.maskedWord(); got != "_ _ _ _ _ _" {
		t.Fatalf("fresh mask = %q", got)
	}

	g.guessed['O'-'A'] = true
	if got := g.maskedWord(); got != "_ O _ _ _ _" {
		t.Fatalf("mask after O = %q", got)
	}
}

func TestMaskedWordRevealsOnGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.word = "GOPHER"
	g.gameOver = true

	if got := g.maskedWord(); got != "G O P H E R" {
		t.Fatalf("game over mask = %q", got)
	}
}

func TestCursorStaysInsideAlphabet(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	for range 30 {
		stepWith(g, core.ActionLeft)
	}
	if g.cursor != 0 {
		t.Fatalf("cursor after spamming left = %d, want 0", g.cursor)
	}

	for range 30 {
		stepWith(g, core.ActionRight)
	}
	for range 5 {
		stepWith(g, core.ActionDown)
	}
	if g.cursor > 25 {
		t.Fatalf("cursor escaped alphabet: %d", g.cursor)
	}
}

func TestCorrectGuessScoresPerOccurrence(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.word = "LEVEL"

	guess(t, g, 'L')

	if g.wrong != 0 {
		t.Fatalf("wrong = %d after a hit", g.wrong)
	}
	if g.score != 2*letterPoints {
		t.Fatalf("score = %d, want %d", g.score, 2*letterPoints)
	}
	if !strings.Contains(g.maskedWord(), "L") {
		t.Fatalf("mask %q does not reveal L", g.maskedWord())
	}
}

func TestWrongGuessesLoseAtLimit(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.word = "GOPHER"

	misses := []rune{'Z', 'X', 'Q', 'J', 'K', 'V'}
	for i, letter := range misses {
		if g.gameOver {
			t.Fatalf("game over after only %d misses", i)
		}
		guess(t, g, letter)
	}

	if g.wrong != maxWrong {
		t.Fatalf("wrong = %d, want %d", g.wrong, maxWrong)
	}
	if !g.gameOver || g.won {
		t.Fatalf("gameOver=%v won=%v after %d misses", g.gameOver, g.won, maxWrong)
	}
	if g.score != 0 {
		t.Fatalf("score = %d, want 0", g.score)
	}
}

func TestRepeatedGuessIsNoop(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.word = "GOPHER"

	guess(t, g, 'Z')
	wrongAfterFirst := g.wrong

	guess(t, g, 'Z')
	if g.wrong != wrongAfterFirst {
		t.Fatalf("repeated miss counted again: wrong = %d", g.wrong)
	}

	guess(t, g, 'G')
	scoreAfterHit := g.score
	guess(t, g, 'G')
	if g.score != scoreAfterHit {
		t.Fatalf("repeated hit scored again: score = %d", g.score)
	}
}

func TestSolvingWordWinsWithBonus(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.word = "DOG"

	guess(t, g, 'D')
	guess(t, g, 'O')
	if g.gameOver {
		t.Fatal("game over before the word is complete")
	}
	guess(t, g, 'G')

	if !g.won || !g.gameOver {
		t.Fatalf("won=%v gameOver=%v after solving", g.won, g.gameOver)
	}
	want := 3*letterPoints + winBonus
	if g.score != want {
		t.Fatalf("score = %d, want %d", g.score, want)
	}
}

func TestNoInputAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.word = "DOG"
	g.gameOver = true

	guess := func(letter rune) {
		g.cursor = int(letter - 'A')
		stepWith(g, core.ActionConfirm)
	}
	guess('D')

	if g.guessed['D'-'A'] {
		t.Fatal("guess accepted after game over")
	}
}

func TestPauseBlocksGuessing(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.word = "DOG"

	stepWith(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("not paused")
	}

	stepWith(g, core.ActionConfirm)
	if g.guessed[g.cursor] {
		t.Fatal("guess accepted while paused")
	}
}

func TestRenderShowsMaskAndAlphabet(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.word = "GOPHER"

	screen := core.NewScreen(60, 20)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "_ _ _ _ _ _") {
		t.Fatalf("render missing masked word:\n%s", out)
	}
	if !strings.Contains(out, "Misses: 0/6") {
		t.Fatalf("render missing miss counter:\n%s", out)
	}
	if !strings.Contains(out, "A") || !strings.Contains(out, "Z") {
		t.Fatalf("render missing alphabet:\n%s", out)
	}
}

func TestWordListSuitableForDisplay(t *testing.T) {
	if len(wordList) == 0 {
		t.Fatal("empty word list")
	}
	seen := map[string]bool{}
	for _, w := range wordList {
		if len(w) < 4 {
			t.Errorf("word %q shorter than 4 letters", w)
		}
		if w != strings.ToUpper(w) {
			t.Errorf("word %q is not uppercase", w)
		}
		if seen[w] {
			t.Errorf("duplicate word %q", w)
		}
		seen[w] = true
	}
}
