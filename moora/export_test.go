package moora

// Vote exposes the pairwise dominance tournament to moora_test so custom
// rank matrices (including draws) can be checked directly.
var Vote = vote
