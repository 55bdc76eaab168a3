/*
Package lexicon is the rules core of wordtiles.

A dictionary is indexed by canonical key: the letters of a word sorted into
code point order. Words sharing a key are anagrams of each other, so a single
map lookup answers both "what are the anagrams of this word" and "is this
spelling a real word".

Candidate search builds on that. Given a word already on the board and a
tray of tiles, every distinct sub-multiset of the tray is pooled with the
board word and looked up as an anagram. Only results that still contain the
board word as a contiguous run survive, which means the new tiles went on
the front, the back, or both.

An Index is immutable once built and may be shared by any number of
goroutines.
*/
package lexicon
