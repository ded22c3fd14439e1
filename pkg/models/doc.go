// Package models provides the data types shared between the prompting layer,
// the resolution engine and the CLI.
//
// # Answers
//
// [AnswerSet] is the finalized, validated set of scaffolding choices. It is
// produced once by the prompting layer (see internal/answers) and treated as
// read-only afterwards.
//
// # Dependencies
//
// The optional runtime libraries a project can opt into form a closed set.
// Use [DependencyID] and its constants rather than raw strings:
//
//	id, err := models.ParseDependencyID("jquery")
//	if err != nil {
//	    // unknown identifier
//	}
//	fmt.Println(id.Description())
package models
