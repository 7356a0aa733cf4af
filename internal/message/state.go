package message

// WaitingKind identifies what sort of input the system is waiting for while
// paused between task steps.
type WaitingKind int

const (
	WaitingSpeak WaitingKind = iota
	WaitingVision
	WaitingSkip
	WaitingExit
)

// WaitingInteraction is the payload of SmartSpeakerState's
// WaitingForInteraction variant. VisionActions is only meaningful when Kind
// is WaitingVision.
type WaitingInteraction struct {
	Kind          WaitingKind
	VisionActions []VisionAction
}

func Speak() WaitingInteraction { return WaitingInteraction{Kind: WaitingSpeak} }
func Skip() WaitingInteraction  { return WaitingInteraction{Kind: WaitingSkip} }
func Exit() WaitingInteraction  { return WaitingInteraction{Kind: WaitingExit} }
func Vision(actions []VisionAction) WaitingInteraction {
	return WaitingInteraction{Kind: WaitingVision, VisionActions: actions}
}

// StateKind is the closed set of top-level smart-speaker states.
type StateKind int

const (
	StateIdle StateKind = iota
	StateAttention
	StateWaitingForInteraction
)

// SmartSpeakerState is the global conversational state. Only the Context
// actor mutates it; Core only broadcasts it via StateUpdate.
type SmartSpeakerState struct {
	Kind    StateKind
	Waiting WaitingInteraction // meaningful only when Kind == StateWaitingForInteraction
}

func IdleState() SmartSpeakerState      { return SmartSpeakerState{Kind: StateIdle} }
func AttentionState() SmartSpeakerState { return SmartSpeakerState{Kind: StateAttention} }
func WaitingState(w WaitingInteraction) SmartSpeakerState {
	return SmartSpeakerState{Kind: StateWaitingForInteraction, Waiting: w}
}
