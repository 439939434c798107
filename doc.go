/*
Package atlastool composes sprites into texture atlases.

Sprites are added to a Builder under a group key. Each sprite is trimmed to
its visible pixels; the offsets needed to draw it at its original position
are kept in its Frame. When the atlas is saved, all sprites are packed into
rows, tallest first, and the atlas is written as a PNG image together with a
JSON document that describes every frame:

	b := atlastool.NewBuilder("hero")
	for _, img := range walkFrames {
		b.AddSprite("hero.walk", img)
	}
	sheet, err := b.Save("out/sprites")

This writes out/sprites/hero.png and out/sprites/hero.json.
*/
package atlastool
