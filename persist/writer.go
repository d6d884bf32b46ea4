// Package persist writes the core's emitted artefacts to disk and delegates
// SVG/PNG rendering of the dot text to an external Graphviz process.
package persist

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/google/uuid"
	"github.com/pflow-xyz/petri-coverability/petrierr"
)

// Renderer converts dot text into a rendered image in the given format
// ("svg" or "png"). It exists as a field on Writer so tests can substitute
// a fake renderer without a real Graphviz install.
type Renderer func(dotText, format string) ([]byte, error)

// Writer persists the SMV text, the dot text, and the dot text rendered to
// SVG and PNG, all under a shared output prefix.
type Writer struct {
	OutputPrefix string
	Render       Renderer
}

// NewWriter returns a Writer that shells out to the system "dot" binary.
func NewWriter(outputPrefix string) *Writer {
	return &Writer{OutputPrefix: outputPrefix, Render: RunDot}
}

// Persist writes "<prefix>.smv" and "<prefix>.dot", then renders and writes
// "<prefix>.svg" and "<prefix>.png" from the dot text. On any failure,
// files already written are left on disk; persistence does no cleanup.
func (w *Writer) Persist(smvText, dotText string) error {
	if err := w.writeFile(".smv", []byte(smvText)); err != nil {
		return err
	}
	if err := w.writeFile(".dot", []byte(dotText)); err != nil {
		return err
	}

	svg, err := w.Render(dotText, "svg")
	if err != nil {
		return err
	}
	if err := w.writeFile(".svg", svg); err != nil {
		return err
	}

	png, err := w.Render(dotText, "png")
	if err != nil {
		return err
	}
	return w.writeFile(".png", png)
}

// writeFile writes data to a uuid-suffixed scratch file and renames it into
// place, so a concurrent invocation against the same prefix never observes
// a partially-written artefact.
func (w *Writer) writeFile(suffix string, data []byte) error {
	path := w.OutputPrefix + suffix
	scratch := path + "." + uuid.New().String() + ".tmp"

	if err := os.WriteFile(scratch, data, 0o644); err != nil {
		return petrierr.FileIOFailed(fmt.Sprintf("write %s", path), err)
	}
	if err := os.Rename(scratch, path); err != nil {
		os.Remove(scratch)
		return petrierr.FileIOFailed(fmt.Sprintf("rename %s", path), err)
	}
	return nil
}

// RunDot pipes dotText to the system "dot" binary and returns its stdout.
// A non-zero exit is treated as the renderer rejecting the dot text
// (petrierr.GraphAssemblyFailed); a failure to spawn the process at all is
// petrierr.RendererIOFailed.
func RunDot(dotText, format string) ([]byte, error) {
	cmd := exec.Command("dot", "-T"+format)
	cmd.Stdin = bytes.NewBufferString(dotText)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return nil, petrierr.GraphAssemblyFailed(stderr.String())
		}
		return nil, petrierr.RendererIOFailed(err)
	}
	return stdout.Bytes(), nil
}

// ReadSource reads the input net file at path, wrapping any failure as
// petrierr.FileIOFailed.
func ReadSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, petrierr.FileIOFailed(fmt.Sprintf("read %s", path), err)
	}
	return data, nil
}
