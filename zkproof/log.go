package zkproof

import "github.com/sirupsen/logrus"

// Logger receives the debug output of proof generation and verification.
// Secrets and randomness are never logged.
var Logger *logrus.Logger

func init() {
	Logger = logrus.StandardLogger()
}

// proofLogEntry identifies proof by its fingerprint, or carries the error
// when no fingerprint can be computed.
func proofLogEntry(proof *Proof) *logrus.Entry {
	fp, err := proof.Fingerprint()
	if err != nil {
		return Logger.WithError(err)
	}
	return Logger.WithField("proof", fp)
}
