package undotree_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/undotree"
)

type document struct {
	*undotree.Composite
	Title  *undotree.Text
	Pages  *undotree.Leaf[int]
	Cursor *undotree.Leaf[int]
}

func newDocument(title string) *document {
	d := &document{
		Title:  undotree.NewText(title),
		Pages:  undotree.NewLeaf(1),
		Cursor: undotree.NewLeaf(0),
	}
	d.Composite = undotree.NewComposite(
		undotree.Field("title", d.Title),
		undotree.Field("pages", d.Pages),
		undotree.SkipField("cursor", d.Cursor),
	)
	return d
}

func TestDocumentRoundTrip(t *testing.T) {
	ws := undotree.New(newDocument("Draft"))

	edits := []func(d *document){
		func(d *document) { d.Title.Set("Draft v2") },
		func(d *document) { d.Pages.Set(3); d.Cursor.Set(40) },
		func(d *document) { d.Title.Set("Final"); d.Pages.Set(4) },
	}
	for _, edit := range edits {
		err := ws.Mutate(func(d *document) error {
			edit(d)
			return nil
		})
		if err != nil {
			t.Fatalf("Mutate failed: %v", err)
		}
	}
	if ws.OpsLen() != 3 {
		t.Fatalf("OpsLen() = %d, want 3", ws.OpsLen())
	}

	for ws.CanUndo() {
		if _, _, err := ws.Undo(); err != nil {
			t.Fatalf("Undo failed: %v", err)
		}
	}
	d := ws.Data()
	if d.Title.Get() != "Draft" || d.Pages.Get() != 1 {
		t.Errorf("after undo: %q, %d", d.Title.Get(), d.Pages.Get())
	}
	if d.Cursor.Get() != 40 {
		t.Errorf("skipped field should not be undone, got %d", d.Cursor.Get())
	}

	for ws.CanRedo() {
		if _, _, err := ws.Redo(); err != nil {
			t.Fatalf("Redo failed: %v", err)
		}
	}
	if d.Title.Get() != "Final" || d.Pages.Get() != 4 {
		t.Errorf("after redo: %q, %d", d.Title.Get(), d.Pages.Get())
	}
}

func TestCorruptionIsReported(t *testing.T) {
	ws := undotree.New(newDocument("a"))
	_ = ws.Mutate(func(d *document) error {
		d.Pages.Set(2)
		return nil
	})

	ws.Data().Pages.Set(9)
	_, _, err := ws.Undo()
	if !errors.Is(err, undotree.ErrStateCorruption) {
		t.Fatalf("Undo error = %v, want ErrStateCorruption", err)
	}
	var ce *undotree.CorruptionError
	if !errors.As(err, &ce) {
		t.Errorf("error %T is not a *CorruptionError", err)
	}
}

func TestFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := undotree.DefaultConfig()
	cfg.History.Versions = "counter"
	cfg.History.VersionPrefix = "r"
	cfg.History.MaxEntries = 1
	cfg.Log.Level = "debug"
	cfg.Log.File = filepath.Join(dir, "ws.log")

	opts, closer, err := undotree.FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig failed: %v", err)
	}

	ws := undotree.New(undotree.NewLeaf(0), opts...)
	ws.BeginOp()
	if v, _ := ws.NextVersion(); v != "r0000000000000001" {
		t.Errorf("NextVersion() = %q", v)
	}
	ws.Data().Set(1)
	ws.EndOp()

	ws.BeginOp()
	ws.Data().Set(2)
	ws.EndOp()
	if ws.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ws.Len())
	}

	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "committed") {
		t.Errorf("log missing commit events: %q", data)
	}
}

func TestFromConfigInvalid(t *testing.T) {
	cfg := undotree.DefaultConfig()
	cfg.History.Versions = "ulid"

	if _, _, err := undotree.FromConfig(cfg); err == nil {
		t.Error("expected validation error")
	}
}
