package domain

// EncryptedUser is the persisted form of an account. The submitted
// password is transient: only the encoded hash output is ever stored.
type EncryptedUser struct {
	Username          string `bson:"username"`
	EncryptedPassword string `bson:"encrypted_password"`
}
