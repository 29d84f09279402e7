package chain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/keysummon/keysummon/internal/ai"
	"github.com/keysummon/keysummon/internal/model"
)

// ---------- Fakes ----------

type fakeSimulator struct {
	ops      []string
	failNext bool
}

func (s *fakeSimulator) Paste() error {
	if s.failNext {
		return errors.New("paste failed")
	}
	s.ops = append(s.ops, "paste")
	return nil
}

func (s *fakeSimulator) SimulateKeystroke(ks model.Keystroke) error {
	if s.failNext {
		return errors.New("keystroke failed")
	}
	s.ops = append(s.ops, "keystroke:"+ks.Key)
	return nil
}

type fakeClipboard struct {
	text    string
	written []string
	readErr error
}

func (c *fakeClipboard) ReadText() (string, error) {
	return c.text, c.readErr
}

func (c *fakeClipboard) WriteText(text string) error {
	c.written = append(c.written, text)
	return nil
}

type fakeRecorder struct {
	audio []byte
	mime  string
	err   error
}

func (r *fakeRecorder) Record(_ context.Context, _ time.Duration) ([]byte, string, error) {
	return r.audio, r.mime, r.err
}

type fakeProvider struct {
	lastSystem string
	lastInput  string
	lastAudio  []byte
	lastMime   string
	response   string
	err        error
}

func (p *fakeProvider) SendText(_ context.Context, system, input string) (ai.Response, error) {
	p.lastSystem = system
	p.lastInput = input
	return ai.Response{Text: p.response}, p.err
}

func (p *fakeProvider) SendAudio(_ context.Context, system string, audio []byte, mime string) (ai.Response, error) {
	p.lastSystem = system
	p.lastAudio = audio
	p.lastMime = mime
	return ai.Response{Text: p.response}, p.err
}

func (p *fakeProvider) TestConnection(_ context.Context) error { return p.err }

type fakeResolver struct {
	role     *model.Role
	provider ai.Provider
	roleErr  error
}

func (r *fakeResolver) ResolveRole(_ context.Context, id string) (*model.Role, error) {
	if r.roleErr != nil {
		return nil, r.roleErr
	}
	if r.role != nil {
		return r.role, nil
	}
	return &model.Role{ID: id, SystemPrompt: "prompt for " + id}, nil
}

func (r *fakeResolver) ResolveProvider(_ context.Context, _ string) (ai.Provider, error) {
	if r.provider == nil {
		return nil, ai.ErrNoProvider
	}
	return r.provider, nil
}

func simFactory(sim *fakeSimulator) SimulatorFactory {
	return func() (Simulator, error) { return sim, nil }
}

func enabledAction(t model.PostActionType) model.PostAction {
	return model.PostAction{ID: "a", Enabled: true, Type: t}
}

// ---------- Tests ----------

func TestExecuteRunsActionsInOrder(t *testing.T) {
	sim := &fakeSimulator{}
	exec := NewExecutor(simFactory(sim), &fakeClipboard{}, nil, &fakeResolver{})

	actions := []model.PostAction{
		enabledAction(model.PostActionType{Kind: model.ActionSimulateKeystroke, Keystroke: model.Keystroke{Key: "a"}}),
		enabledAction(model.PostActionType{Kind: model.ActionDelay, DelayMS: 5}),
		enabledAction(model.PostActionType{Kind: model.ActionPasteClipboard}),
	}

	if err := exec.Execute(context.Background(), actions, nil); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	want := []string{"keystroke:a", "paste"}
	if len(sim.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", sim.ops, want)
	}
	for i := range want {
		if sim.ops[i] != want[i] {
			t.Fatalf("ops[%d] = %q, want %q", i, sim.ops[i], want[i])
		}
	}
}

func TestExecuteSkipsDisabledActions(t *testing.T) {
	sim := &fakeSimulator{}
	exec := NewExecutor(simFactory(sim), &fakeClipboard{}, nil, &fakeResolver{})

	actions := []model.PostAction{
		{ID: "off", Enabled: false, Type: model.PostActionType{Kind: model.ActionPasteClipboard}},
		enabledAction(model.PostActionType{Kind: model.ActionSimulateKeystroke, Keystroke: model.Keystroke{Key: "x"}}),
	}

	if err := exec.Execute(context.Background(), actions, nil); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if len(sim.ops) != 1 || sim.ops[0] != "keystroke:x" {
		t.Fatalf("ops = %v, want [keystroke:x]", sim.ops)
	}
}

func TestExecuteAbortsOnFirstFailure(t *testing.T) {
	sim := &fakeSimulator{failNext: true}
	exec := NewExecutor(simFactory(sim), &fakeClipboard{}, nil, &fakeResolver{})

	actions := []model.PostAction{
		enabledAction(model.PostActionType{Kind: model.ActionPasteClipboard}),
		enabledAction(model.PostActionType{Kind: model.ActionDelay, DelayMS: 5}),
		enabledAction(model.PostActionType{Kind: model.ActionSimulateKeystroke, Keystroke: model.Keystroke{Key: "z"}}),
	}

	err := exec.Execute(context.Background(), actions, nil)
	if err == nil {
		t.Fatal("Execute() expected error from failing paste")
	}
	if len(sim.ops) != 0 {
		t.Fatalf("later actions ran after a failure: %v", sim.ops)
	}
}

func TestExecuteFailsWhenSimulatorUnavailable(t *testing.T) {
	factory := func() (Simulator, error) { return nil, errors.New("headless session") }
	exec := NewExecutor(factory, &fakeClipboard{}, nil, &fakeResolver{})

	actions := []model.PostAction{
		enabledAction(model.PostActionType{Kind: model.ActionDelay, DelayMS: 1}),
	}
	if err := exec.Execute(context.Background(), actions, nil); err == nil {
		t.Fatal("Execute() expected simulator construction failure to abort the batch")
	}
}

func TestExecuteUnknownActionKind(t *testing.T) {
	exec := NewExecutor(simFactory(&fakeSimulator{}), &fakeClipboard{}, nil, &fakeResolver{})

	actions := []model.PostAction{
		enabledAction(model.PostActionType{Kind: "explode"}),
	}
	if err := exec.Execute(context.Background(), actions, nil); err == nil {
		t.Fatal("Execute() expected error for unknown action kind")
	}
}

func TestCallAIFromClipboard(t *testing.T) {
	clip := &fakeClipboard{text: "hallo welt"}
	provider := &fakeProvider{response: "hello world"}
	resolver := &fakeResolver{
		role:     &model.Role{ID: "de-en-translate", SystemPrompt: "translate"},
		provider: provider,
	}
	exec := NewExecutor(simFactory(&fakeSimulator{}), clip, nil, resolver)

	actions := []model.PostAction{
		enabledAction(model.PostActionType{
			Kind:        model.ActionCallAI,
			RoleID:      "de-en-translate",
			InputSource: model.AiInputSource{Kind: model.InputClipboard},
		}),
	}

	if err := exec.Execute(context.Background(), actions, nil); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if provider.lastSystem != "translate" {
		t.Errorf("system prompt = %q, want %q", provider.lastSystem, "translate")
	}
	if provider.lastInput != "hallo welt" {
		t.Errorf("input = %q, want clipboard content", provider.lastInput)
	}
	if len(clip.written) != 1 || clip.written[0] != "hello world" {
		t.Errorf("clipboard written = %v, want response text", clip.written)
	}
}

func TestCallAIFromProcessOutputStripsANSI(t *testing.T) {
	provider := &fakeProvider{response: "ok"}
	resolver := &fakeResolver{provider: provider}
	clip := &fakeClipboard{}
	exec := NewExecutor(simFactory(&fakeSimulator{}), clip, nil, resolver)

	actions := []model.PostAction{
		enabledAction(model.PostActionType{
			Kind:        model.ActionCallAI,
			RoleID:      "beautify",
			InputSource: model.AiInputSource{Kind: model.InputProcessOutput},
		}),
	}
	output := []byte("\x1b[32mresult:\x1b[0m 42\n")

	if err := exec.Execute(context.Background(), actions, output); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if provider.lastInput != "result: 42" {
		t.Errorf("input = %q, want stripped and trimmed stdout", provider.lastInput)
	}
}

func TestCallAIFromAudio(t *testing.T) {
	provider := &fakeProvider{response: "transcript"}
	resolver := &fakeResolver{provider: provider}
	recorder := &fakeRecorder{audio: []byte{1, 2, 3}, mime: "audio/wav"}
	clip := &fakeClipboard{}
	exec := NewExecutor(simFactory(&fakeSimulator{}), clip, recorder, resolver)

	actions := []model.PostAction{
		enabledAction(model.PostActionType{
			Kind:        model.ActionCallAI,
			RoleID:      "de-transcribe",
			InputSource: model.AiInputSource{Kind: model.InputRecordAudio, MaxDurationMS: 100},
		}),
	}

	if err := exec.Execute(context.Background(), actions, nil); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if len(provider.lastAudio) != 3 || provider.lastMime != "audio/wav" {
		t.Errorf("provider got audio %v mime %q", provider.lastAudio, provider.lastMime)
	}
	if len(clip.written) != 1 || clip.written[0] != "transcript" {
		t.Errorf("clipboard written = %v, want transcript", clip.written)
	}
}

func TestCallAIWithoutRecorderFails(t *testing.T) {
	resolver := &fakeResolver{provider: &fakeProvider{}}
	exec := NewExecutor(simFactory(&fakeSimulator{}), &fakeClipboard{}, nil, resolver)

	actions := []model.PostAction{
		enabledAction(model.PostActionType{
			Kind:        model.ActionCallAI,
			RoleID:      "de-transcribe",
			InputSource: model.AiInputSource{Kind: model.InputRecordAudio},
		}),
	}
	if err := exec.Execute(context.Background(), actions, nil); err == nil {
		t.Fatal("Execute() expected error when no recorder is available")
	}
}

func TestCallAIClipboardReadFailureAborts(t *testing.T) {
	clip := &fakeClipboard{readErr: errors.New("no clipboard")}
	resolver := &fakeResolver{provider: &fakeProvider{}}
	exec := NewExecutor(simFactory(&fakeSimulator{}), clip, nil, resolver)

	actions := []model.PostAction{
		enabledAction(model.PostActionType{
			Kind:        model.ActionCallAI,
			RoleID:      "beautify",
			InputSource: model.AiInputSource{Kind: model.InputClipboard},
		}),
	}
	if err := exec.Execute(context.Background(), actions, nil); err == nil {
		t.Fatal("Execute() expected clipboard read failure to abort")
	}
}
