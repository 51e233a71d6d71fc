package ecs

// EntityID uniquely identifies an entity in a World.
type EntityID uint64

// NilEntity is the zero value; no live entity ever has this ID.
const NilEntity EntityID = 0
