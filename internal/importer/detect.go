package importer

import "github.com/afuste/dueltrack/internal/extract"

// DetectIdentity guesses the export owner's name: the owner is the sender
// who appears in the most distinct conversation IDs, since they participate
// in every conversation while each contact shows up in only one. Returns ""
// when the table carries no usable sender/conversation data. Ties go to the
// lexicographically smaller name for determinism.
func DetectIdentity(rows []extract.Row) string {
	convos := make(map[string]map[string]struct{})
	for _, row := range rows {
		if row.Sender == "" || row.ConversationID == "" {
			continue
		}
		set, ok := convos[row.Sender]
		if !ok {
			set = make(map[string]struct{})
			convos[row.Sender] = set
		}
		set[row.ConversationID] = struct{}{}
	}

	var best string
	bestCount := 0
	for sender, set := range convos {
		n := len(set)
		if n > bestCount || (n == bestCount && sender < best) {
			best = sender
			bestCount = n
		}
	}
	return best
}
