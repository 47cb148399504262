package models

// HeaderContentSignature carries the HMAC-SHA256 of an uploaded file keyed
// with the device key. Devices set it and the shadow store verifies it.
const HeaderContentSignature = "X-Content-Signature"
