// Package model defines core data structures for KeySummon.
package model

// TriggerKind discriminates PostActionTrigger variants.
type TriggerKind string

const (
	// TriggerOnExit runs post-actions after the launched process exits with code 0.
	TriggerOnExit TriggerKind = "onExit"
	// TriggerAfterDelay runs post-actions a fixed delay after a detached launch.
	TriggerAfterDelay TriggerKind = "afterDelay"
)

// ActionKind discriminates PostActionType variants.
type ActionKind string

const (
	// ActionPasteClipboard sends the platform paste chord.
	ActionPasteClipboard ActionKind = "pasteClipboard"
	// ActionSimulateKeystroke sends a configured keystroke combination.
	ActionSimulateKeystroke ActionKind = "simulateKeystroke"
	// ActionDelay waits for a fixed duration before the next action.
	ActionDelay ActionKind = "delay"
	// ActionCallAI resolves an input source, invokes an AI role, and writes
	// the response to the clipboard.
	ActionCallAI ActionKind = "callAi"
)

// InputSourceKind discriminates AiInputSource variants.
type InputSourceKind string

const (
	// InputClipboard reads the clipboard text at execution time.
	InputClipboard InputSourceKind = "clipboard"
	// InputRecordAudio records from the default input device.
	InputRecordAudio InputSourceKind = "recordAudio"
	// InputProcessOutput reads the stdout captured from an awaited launch.
	InputProcessOutput InputSourceKind = "processOutput"
)

// HotkeyActionKind discriminates what a hotkey press triggers.
type HotkeyActionKind string

const (
	// HotkeyLaunchProgram launches an external program.
	HotkeyLaunchProgram HotkeyActionKind = "launchProgram"
	// HotkeyCallAI invokes an AI role directly, without launching anything.
	HotkeyCallAI HotkeyActionKind = "callAi"
)

// ChainState represents the state of one trigger chain.
type ChainState string

const (
	// ChainIdle indicates the chain has not started.
	ChainIdle ChainState = "idle"
	// ChainLaunching indicates the program is being spawned.
	ChainLaunching ChainState = "launching"
	// ChainWaiting indicates the chain is blocked on process exit.
	ChainWaiting ChainState = "waiting"
	// ChainDelaying indicates the chain is sleeping out an afterDelay trigger.
	ChainDelaying ChainState = "delaying"
	// ChainExecuting indicates post-actions are running.
	ChainExecuting ChainState = "executing"
	// ChainDone indicates the chain finished (including gated skips).
	ChainDone ChainState = "done"
	// ChainFailed indicates the chain aborted on an error.
	ChainFailed ChainState = "failed"
)

// OutputFormat describes how an AI role's response should be treated.
type OutputFormat string

const (
	// OutputPlain is unformatted text.
	OutputPlain OutputFormat = "plain"
	// OutputMarkdown is markdown-formatted text.
	OutputMarkdown OutputFormat = "markdown"
)

// ProviderKind identifies an AI provider backend.
type ProviderKind string

const (
	// ProviderGemini uses the Google Gemini API.
	ProviderGemini ProviderKind = "gemini"
	// ProviderOpenAI uses the OpenAI API.
	ProviderOpenAI ProviderKind = "openai"
	// ProviderAnthropic uses the Anthropic API.
	ProviderAnthropic ProviderKind = "anthropic"
)
