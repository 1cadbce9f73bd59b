package test

// ShuffleArgumentJSON is the canonical encoding of Fixture.ShuffleArgument.
const ShuffleArgumentJSON = `{"c_A":["0x9","0x5"],"c_B":["0x9","0x5"],` +
	`"productArgument":{"c_b":"0x4","hadamardArgument":{"c_b":["0x9","0x5"],` +
	`"zeroArgument":{"c_A_0":"0x9","c_B_m":"0x5","c_d":["0x5","0x9","0x4","0x1","0x4"],` +
	`"a_prime":["0x3","0x2"],"b_prime":["0x4","0x3"],"r_prime":"0x1","s_prime":"0x3","t_prime":"0x1"}},` +
	`"singleValueProductArgument":{"c_d":"0x4","c_delta":"0x4","c_Delta":"0x5",` +
	`"a_tilde":["0x2","0x1"],"b_tilde":["0x2","0x3"],"r_tilde":"0x1","s_tilde":"0x0"}},` +
	`"multiExponentiationArgument":{"c_A_0":"0x3","c_B":["0x1","0x9","0x1","0x1"],` +
	`"E":[{"gamma":"0x5","phis":["0x5","0x1"]},{"gamma":"0x4","phis":["0x1","0x5"]},` +
	`{"gamma":"0x5","phis":["0x5","0x5"]},{"gamma":"0x5","phis":["0x3","0x9"]}],` +
	`"a":["0x4","0x4"],"r":"0x0","b":"0x4","s":"0x4","tau":"0x0"}}`

// SimplestShuffleArgumentJSON is the canonical encoding of
// Fixture.SimplestShuffleArgument.
const SimplestShuffleArgumentJSON = `{"c_A":["0x3"],"c_B":["0x4"],` +
	`"productArgument":{"singleValueProductArgument":{"c_d":"0x4","c_delta":"0x4","c_Delta":"0x5",` +
	`"a_tilde":["0x1","0x2"],"b_tilde":["0x0","0x2"],"r_tilde":"0x0","s_tilde":"0x0"}},` +
	`"multiExponentiationArgument":{"c_A_0":"0x4","c_B":["0x5","0x5"],` +
	`"E":[{"gamma":"0x5","phis":["0x3"]},{"gamma":"0x4","phis":["0x9"]}],` +
	`"a":["0x3","0x4"],"r":"0x2","b":"0x4","s":"0x4","tau":"0x0"}}`

// EncryptionGroupJSON encodes Small.
const EncryptionGroupJSON = `{"p":"0xB","q":"0x5","g":"0x3"}`

// CiphertextJSON encodes the ciphertext (4, [5, 9]).
const CiphertextJSON = `{"gamma":"0x4","phis":["0x5","0x9"]}`
