// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import "strconv"

// Stage is a state of the generation pipeline.
type Stage int

const (
	Idle Stage = iota
	GeneratingCAKey
	GeneratingRootCert
	GeneratingLeafKey
	BuildingRequest
	SigningLeaf
	PersistingArtifacts
	ComputingFingerprint
	Done
)

var stageNames = [...]string{
	Idle:                 "Idle",
	GeneratingCAKey:      "GeneratingCAKey",
	GeneratingRootCert:   "GeneratingRootCert",
	GeneratingLeafKey:    "GeneratingLeafKey",
	BuildingRequest:      "BuildingRequest",
	SigningLeaf:          "SigningLeaf",
	PersistingArtifacts:  "PersistingArtifacts",
	ComputingFingerprint: "ComputingFingerprint",
	Done:                 "Done",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "Stage(" + strconv.Itoa(int(s)) + ")"
	}
	return stageNames[s]
}

// Stages returns every state in pipeline order, Idle first.
func Stages() []Stage {
	out := make([]Stage, 0, len(stageNames))
	for s := Idle; s <= Done; s++ {
		out = append(out, s)
	}
	return out
}
