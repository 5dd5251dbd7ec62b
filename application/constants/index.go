package constants

// certverify response codes
// these consist of 4 digit numbers
//
// the 1st 3 identify the scenario
// 4th indicates if the response requires user interaction through a dialog box. 0 means it does not require. 1 means it requires.

var ACCOUNT_CREATED uint = 9110            // take the user to the login page
var BIOMETRIC_ENROLLED uint = 9150         // enrollment stored, biometric login is now on
var DEGENERATE_FACE_CAPTURE uint = 4131    // ask the user to recapture with a better image
var CERTIFICATE_REVOKED uint = 7210        // show revocation details
var CERTIFICATE_TAMPERED uint = 7221       // warn the verifier that the hash does not match the ledger
var CERTIFICATE_NOT_FOUND uint = 7230      // nothing matches the query

const (
	RoleStudent  = "student"
	RoleVerifier = "verifier"
	RoleAdmin    = "admin"
)

var AVAILABLE_ROLES = []string{RoleStudent, RoleVerifier, RoleAdmin}

const (
	VerificationValid    = "valid"
	VerificationRevoked  = "revoked"
	VerificationTampered = "tampered"
	VerificationNotFound = "not_found"
)

const SESSION_TTL_HOURS = 12

const LEDGER_BLOCK_HEIGHT_KEY = "ledger-block-height"

const LEDGER_HEAD_KEY = "ledger-head"

var SUPPORT_EMAIL = "help@certverify.io"

var MAX_ENROLLED_DESCRIPTORS = 10
