package tracking

import "testing"

// FuzzTextRoundTrip checks that the recorded op of any edit replays and
// reverts exactly, invalid UTF-8 included.
func FuzzTextRoundTrip(f *testing.F) {
	f.Add("", "")
	f.Add("hello world!", "hello adoo!")
	f.Add("kitten", "sitting")
	f.Add("日本語テキスト", "日本のテキスト")
	f.Add("emoji 👍🏽 ok", "emoji 👎 ok!")
	f.Add("a\xffb", "a\xffbc")
	f.Add("\xed\xa0\x80x", "x\xed\xa0\x80")
	f.Add("\xf0\x9f", "\xf0\x9f\x98\x80")

	f.Fuzz(func(t *testing.T, from, to string) {
		txt := NewText(from)
		txt.Set(to)

		op := txt.ChangeOp()
		if from == to {
			if op != nil {
				t.Fatalf("ChangeOp() = %v for equal texts", op)
			}
			return
		}
		if op == nil {
			t.Fatalf("ChangeOp() = nil for %q -> %q", from, to)
		}

		txt.Reset()
		if err := txt.Back(op); err != nil {
			t.Fatalf("Back failed: %v", err)
		}
		if txt.Get() != from {
			t.Fatalf("after Back got %q, want %q", txt.Get(), from)
		}

		if err := txt.Forward(op); err != nil {
			t.Fatalf("Forward failed: %v", err)
		}
		if txt.Get() != to {
			t.Fatalf("after Forward got %q, want %q", txt.Get(), to)
		}
	})
}
