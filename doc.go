// Package slippable is a swipeable, reorderable vertical list for [Ebitengine].
//
// A [List] owns a tree of rows. Pressing a row starts a drag session that the
// list's [GestureClassifier] resolves into one of three gestures:
//
//   - a horizontal swipe past [GestureConfig.SwipeStartDistance] reveals the
//     row's left or right action panel and, on release, either returns the
//     row or commits it when the swipe crossed the configured threshold;
//   - holding still for [GestureConfig.HoldTimeout] lifts the row for
//     reordering, after which vertical motion shifts its siblings out of the
//     way and auto-scrolls the [ScrollContainer] near its edges;
//   - anything else is released without effect.
//
// # Quick start
//
//	list := slippable.NewList(slippable.Rect{Width: 360, Height: 640}, slippable.DefaultGestureConfig())
//	for i := 0; i < 20; i++ {
//		row, _ := list.AddRow(fmt.Sprintf("item %d", i), 56)
//		row.OnSwipeLeftEndOverThreshold = func(ctx slippable.SwipeContext) {
//			list.RemoveRow(ctx.Row)
//		}
//	}
//	list.OnOutcome(func(out slippable.Outcome) {
//		if out.Kind == slippable.OutcomeReordered {
//			log.Printf("moved %d -> %d", out.OldIndex, out.NewIndex)
//		}
//	})
//	slippable.Run(list, slippable.RunConfig{Title: "List", Width: 360, Height: 640})
//
// For full control, implement [ebiten.Game] yourself and call [List.Update]
// and [List.Draw] directly.
//
// # Driving gestures without a window
//
// [List.Step] advances the list by an explicit duration and consumes one
// synthetic event queued with [List.InjectPress], [List.InjectMove],
// [List.InjectHold], [List.InjectDrag] or [List.InjectRelease]. Sequences can
// also be scripted as JSON with [LoadGestureScript], including [List.Screenshot]
// captures of the drawn frame. The classifier itself is
// usable directly through [GestureClassifier.PointerDown],
// [GestureClassifier.PointerMove], [GestureClassifier.Advance] and
// [GestureClassifier.PointerUp].
//
// # Configuration
//
// [LoadConfig] layers defaults, an optional TOML file, and SLIPPABLE_*
// environment variables into a [GestureConfig].
//
// [Ebitengine]: https://ebitengine.org
package slippable
