package core

// Entity is a unique identifier for a simulated entity
// Zero is never a valid entity and doubles as the "no entity" handle
type Entity uint64

// None is the null entity handle
const None Entity = 0
