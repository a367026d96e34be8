package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// complete asks tagfreq itself for the candidates of the current word. FILE
// arguments fall back to the default file completion.
const complete = `#! /bin/bash

_tagfreq_autocomplete() {
    local cur opts

    cur="${COMP_WORDS[COMP_CWORD]}"

    # all words before the cursor, plus the urfave/cli completion flag
    opts=$( "${COMP_WORDS[@]:0:$COMP_CWORD}" --generate-bash-completion 2>/dev/null )

    if [ $? -eq 0 ]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    fi
}

complete -o default -F _tagfreq_autocomplete tagfreq
`

func bashCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "bash",
		Usage: "print the bash completion script, use with: source <(tagfreq bash)",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprint(e.ui.Out, complete)
			return err
		},
	}
}
