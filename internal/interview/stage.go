package interview

// Stage is a named phase of the screening conversation with distinct
// extraction and transition rules. Transitions are monotonic: a session only
// ever moves forward through the stages.
type Stage int

const (
	StageGreeting Stage = iota
	StageInfoGathering
	StageTechStack
	StageTechQuestions
	StageConclusion
)

// NumStages is the total number of conversation stages, used by boundary
// layers to render progress.
const NumStages = 5

func (s Stage) String() string {
	switch s {
	case StageGreeting:
		return "greeting"
	case StageInfoGathering:
		return "info_gathering"
	case StageTechStack:
		return "tech_stack"
	case StageTechQuestions:
		return "tech_questions"
	case StageConclusion:
		return "conclusion"
	default:
		return "unknown"
	}
}

// Status is the display tuple a boundary layer renders for a stage.
type Status struct {
	Icon  string
	Label string
}

// Status returns the icon and human label for the stage.
func (s Stage) Status() Status {
	switch s {
	case StageGreeting:
		return Status{Icon: "🎯", Label: "Initial Welcome"}
	case StageInfoGathering:
		return Status{Icon: "📝", Label: "Collecting Information"}
	case StageTechStack:
		return Status{Icon: "💻", Label: "Technical Skills Assessment"}
	case StageTechQuestions:
		return Status{Icon: "🧠", Label: "Technical Interview"}
	case StageConclusion:
		return Status{Icon: "✅", Label: "Interview Complete"}
	default:
		return Status{Icon: "❓", Label: "Unknown"}
	}
}

// Index returns the zero-based position of the stage in the interview flow.
func (s Stage) Index() int {
	return int(s)
}
