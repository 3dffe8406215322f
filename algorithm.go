package jwt

// Algorithm identifies a JWS signing algorithm from the fixed allow-list.
// The set is closed; there is no runtime registration.
type Algorithm string

// The twelve accepted signing algorithms (RFC 7518): HMAC, ECDSA,
// RSASSA-PKCS1-v1_5 and RSASSA-PSS, each at SHA-2 digest strengths
// 256, 384 and 512.
const (
	HS256 Algorithm = "HS256"
	HS384 Algorithm = "HS384"
	HS512 Algorithm = "HS512"

	ES256 Algorithm = "ES256"
	ES384 Algorithm = "ES384"
	ES512 Algorithm = "ES512"

	RS256 Algorithm = "RS256"
	RS384 Algorithm = "RS384"
	RS512 Algorithm = "RS512"

	PS256 Algorithm = "PS256"
	PS384 Algorithm = "PS384"
	PS512 Algorithm = "PS512"
)

// ValidateAlgorithm checks name against the allow-list. Matching is
// exact: no case folding, no trimming, and "none" is never accepted.
// Every operation that trusts an algorithm value routes through here;
// no algorithm is ever accepted implicitly.
func ValidateAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case HS256, HS384, HS512,
		ES256, ES384, ES512,
		RS256, RS384, RS512,
		PS256, PS384, PS512:
		return Algorithm(name), nil
	default:
		return "", &AlgorithmError{Algorithm: name}
	}
}
