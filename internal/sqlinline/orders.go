package sqlinline

const QInsertOrder = `--sql 084c2df7-0081-4f29-8a7f-ba818bd47686
insert into orders(gift_id, customer_name, customer_email, status, created_at, updated_at)
values ($1::bigint, $2::text, $3::text, $4::text, now(), now())
returning id, created_at, updated_at;
`

const QSelectOrderWithGift = `--sql 838cf917-19d5-46eb-921b-7e0221f0950b
select o.id, o.gift_id, o.customer_name, o.customer_email, o.status, o.payment_ref,
       o.created_at, o.updated_at,
       g.id, g.name, g.description, g.price_cents, g.image, g.stock, g.created_at, g.updated_at
from orders o
join gifts g on g.id = o.gift_id
where o.id = $1::bigint;
`

const QSetOrderPaymentRef = `--sql 2db3f48e-8195-45de-9a1a-efadf095727f
update orders set payment_ref = $2::text, updated_at = now()
where id = $1::bigint;
`

const QUpdateOrderStatus = `--sql aa71868f-30d0-4592-98d4-0cf14c442e61
update orders set status = $2::text, updated_at = now()
where id = $1::bigint;
`

const QMarkOrderPaid = `--sql facf5955-0537-4129-9087-f3c85b58d8af
update orders set status = 'paid', updated_at = now()
where id = $1::bigint and status <> 'paid';
`
