package app

import (
	"github.com/kingaa1/Cryptography-algorithms/internal/bigint"
	"github.com/kingaa1/Cryptography-algorithms/internal/domain"
)

// Demo parameters. DefaultP is a 155-digit prime with primitive root 5.
// DefaultRSAP and DefaultRSAQ are the RSA primes, with gcd(17, φ) = 1.
const (
	DefaultG    = "5"
	DefaultP    = "15234745201463007706558111083071717085392259682287044574142794675291425649677126470685490446237419785664197470483041493246021879373950819965360084406516123"
	DefaultRSAP = DefaultP
	DefaultRSAQ = "8386506700653187088114129336508517833941752817092037266701121132685842239715196576751226666314102366205376660890913822464516288805181874490066037489054359"
	DefaultE    = "17"
)

// DefaultDHParams returns the demo group (DefaultG, DefaultP).
func DefaultDHParams() domain.DHParams {
	return domain.DHParams{G: bigint.MustParse(DefaultG), P: bigint.MustParse(DefaultP)}
}
