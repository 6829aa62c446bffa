package usecase_match

// CodeAlphabetForTesting exposes the room-code alphabet to the external
// test package.
const CodeAlphabetForTesting = codeAlphabet
