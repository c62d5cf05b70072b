package entity

// ChangeKind classifies a layout mutation for observers.
type ChangeKind int

const (
	ChangeWorkspaceSwitched ChangeKind = iota // current workspace changed
	ChangeColumns                             // a column list changed
	ChangeWins                                // a window list changed
	ChangeFocus                               // forceWin/forceColumn changed
	ChangeScroll                              // baseX or baseY changed
	ChangeLayout                              // window positions recomputed
	ChangeSizeInfo                            // host geometry changed
	ChangeWidth                               // a column width changed
)

var changeKindNames = [...]string{
	ChangeWorkspaceSwitched: "workspace_switched",
	ChangeColumns:           "columns",
	ChangeWins:              "wins",
	ChangeFocus:             "focus",
	ChangeScroll:            "scroll",
	ChangeLayout:            "layout",
	ChangeSizeInfo:          "size_info",
	ChangeWidth:             "width",
}

func (k ChangeKind) String() string {
	if k < 0 || int(k) >= len(changeKindNames) {
		return "unknown"
	}
	return changeKindNames[k]
}

// Change describes one observable mutation. Workspace is the index of the
// affected workspace, or -1 for manager-wide changes.
type Change struct {
	Kind      ChangeKind
	Workspace int
}

type subscriber struct {
	id int
	fn func(Change)
}

// Subscribe registers fn to receive changes. Changes produced by a public
// call are delivered synchronously once the outermost call returns, so fn
// only ever observes a consistent tree. The returned func unsubscribes.
func (lm *LayoutManager) Subscribe(fn func(Change)) (cancel func()) {
	lm.nextSubID++
	id := lm.nextSubID
	lm.subscribers = append(lm.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range lm.subscribers {
			if s.id == id {
				lm.subscribers = append(lm.subscribers[:i:i], lm.subscribers[i+1:]...)
				return
			}
		}
	}
}

// mutate runs fn as one observable operation. Calls nest; only the
// outermost one flushes the pending batch.
func (lm *LayoutManager) mutate(fn func()) {
	lm.depth++
	defer func() {
		lm.depth--
		if lm.depth == 0 {
			lm.flush()
		}
	}()
	fn()
}

func (lm *LayoutManager) emit(kind ChangeKind, ws int) {
	c := Change{Kind: kind, Workspace: ws}
	for _, p := range lm.pending {
		if p == c {
			return
		}
	}
	lm.pending = append(lm.pending, c)
}

func (lm *LayoutManager) flush() {
	if len(lm.pending) == 0 {
		return
	}
	batch := lm.pending
	lm.pending = nil
	subs := make([]subscriber, len(lm.subscribers))
	copy(subs, lm.subscribers)
	for _, c := range batch {
		for _, s := range subs {
			s.fn(c)
		}
	}
}
