package questionbank

import "github.com/lshigami/atcprep/internal/model"

// Entry is one authored question of a bank. CorrectIndex is zero-based.
type Entry struct {
	Prompt       string
	Options      []string
	CorrectIndex int
}

var banks = map[model.ContentCategory][]Entry{
	model.ContentAerodrome: {
		{
			Prompt:       "Which unit is responsible for traffic on the manoeuvring area of a controlled aerodrome?",
			Options:      []string{"Aerodrome control tower", "Approach control unit", "Area control centre", "Flight information centre"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "A runway-holding position marking consists of:",
			Options:      []string{"A single white dashed line", "A red stop bar only", "Two solid and two dashed yellow lines", "Two white solid lines"},
			CorrectIndex: 2,
		},
		{
			Prompt:       "A steady green light directed at an aircraft in flight means:",
			Options:      []string{"Cleared to land", "Return for landing", "Give way and continue circling", "Aerodrome unsafe, do not land"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "Which standard phraseology instructs a pilot to stop before a runway?",
			Options:      []string{"STANDBY", "HOLD SHORT OF RUNWAY", "HOLD POSITION ON RUNWAY", "EXPEDITE"},
			CorrectIndex: 1,
		},
		{
			Prompt:       "The aerodrome traffic circuit is normally flown with turns to the:",
			Options:      []string{"Left", "Right", "Side of the wind", "Side of the tower"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "Wake turbulence separation on departure behind a HEAVY aircraft using the same runway is:",
			Options:      []string{"2 minutes", "1 minute", "3 minutes", "5 minutes"},
			CorrectIndex: 0,
		},
	},
	model.ContentApproach: {
		{
			Prompt:       "The minimum radar separation normally applied within approach control airspace is:",
			Options:      []string{"5 NM", "10 NM", "3 NM", "1 NM"},
			CorrectIndex: 2,
		},
		{
			Prompt:       "An expected approach time (EAT) is issued when:",
			Options:      []string{"A delay of 10 minutes or more is expected", "The aircraft is cleared for a visual approach", "The aircraft is on final", "The runway changes"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "The intermediate approach segment begins at the:",
			Options:      []string{"Intermediate approach fix", "Final approach fix", "Missed approach point", "Initial approach fix"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "Which speed instruction is not normally issued inside 4 NM from the threshold on final?",
			Options:      []string{"Any speed adjustment", "Reduce to minimum approach speed", "Maintain present speed", "None of these restrictions apply"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "A holding pattern without published turns is flown with turns to the:",
			Options:      []string{"Left", "Right", "Direction of the wind", "Pilot's choice"},
			CorrectIndex: 1,
		},
	},
	model.ContentCCR: {
		{
			Prompt:       "What does CCR designate in ATC training?",
			Options:      []string{"En-route area control centre", "Control tower cab", "Approach radar room", "Flight data office"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "The standard en-route radar separation in an area control centre is:",
			Options:      []string{"5 NM", "3 NM", "15 NM", "20 NM"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "Reduced vertical separation minimum (RVSM) applies between:",
			Options:      []string{"FL100 and FL245", "FL195 and FL660", "FL410 and FL600", "FL290 and FL410"},
			CorrectIndex: 3,
		},
		{
			Prompt:       "A coordination message that transfers control of a flight to an adjacent sector is:",
			Options:      []string{"An estimate and release", "A flight plan filing", "A NOTAM", "An ATIS broadcast"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "Squawk 7600 indicates:",
			Options:      []string{"Unlawful interference", "Radio communication failure", "Emergency", "VFR flight"},
			CorrectIndex: 1,
		},
	},
}

// Bank returns the authored entries for a content category, or nil when there are none.
func Bank(category model.ContentCategory) []Entry {
	return banks[category]
}
