/*
Package domain contains the core models shared by the awsh navigation engine.

It is kept free of I/O and third-party dependencies: the types here describe
what the operator is looking at and what a line of input means, while the
runtime, runner and adapters decide how to act on them.

# Key Entities

  - Position: the operator's path from the root Category to the Category being browsed.
  - Command: one parsed input line (verb plus arguments).
  - Outcome: the classified result of dispatching a Command.
  - ActionHandler: the external capability bound to a leaf of the namespace.
  - LifecycleHooks: observability callbacks fired by the console session.
*/
package domain
