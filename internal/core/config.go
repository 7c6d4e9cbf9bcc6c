package core

// DefaultTickRate is the simulation rate, in ticks per second, used when
// none is configured.
const DefaultTickRate = 60
